package rmath

// V4 is a 4D vector composed of 4 float32 lanes. Also used to carry
// homogeneous positions and RGBA colors through the pipeline.
type V4 struct {
	X, Y, Z, W float32
}

// Array returns the ordered components of v in a 4 element array [v.x,v.y,v.z,v.w].
func (v V4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// V3 truncates v to its first three components, discarding W.
func (v V4) V3() V3 {
	return V3{X: v.X, Y: v.Y, Z: v.Z}
}

// AddV4 returns the vector sum of p and q.
func AddV4(p, q V4) V4 {
	return V4{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z, W: p.W + q.W}
}

// SubV4 returns the vector sum of p and -q.
func SubV4(p, q V4) V4 {
	return V4{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z, W: p.W - q.W}
}

// ScaleV4 returns the vector p scaled by f.
func ScaleV4(f float32, p V4) V4 {
	return V4{X: f * p.X, Y: f * p.Y, Z: f * p.Z, W: f * p.W}
}

// MulElemV4 returns the Hadamard product between vectors a and b, used to
// modulate a fragment color by a sampled texture color.
func MulElemV4(a, b V4) V4 {
	return V4{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z, W: a.W * b.W}
}

// DotV4 returns the dot product p·q.
func DotV4(p, q V4) float32 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z + p.W*q.W
}

// ClampV4 returns v with its elements clamped between lo and hi's respective components.
func ClampV4(v, lo, hi V4) V4 {
	return V4{
		X: Clamp(v.X, lo.X, hi.X),
		Y: Clamp(v.Y, lo.Y, hi.Y),
		Z: Clamp(v.Z, lo.Z, hi.Z),
		W: Clamp(v.W, lo.W, hi.W),
	}
}

// EqualV4 checks equality between vector elements to within a tolerance.
func EqualV4(a, b V4, tol float32) bool {
	return EqualWithinAbs(a.X, b.X, tol) && EqualWithinAbs(a.Y, b.Y, tol) &&
		EqualWithinAbs(a.Z, b.Z, tol) && EqualWithinAbs(a.W, b.W, tol)
}

// Clamp01 clamps f to the [0,1] interval.
func Clamp01(f float32) float32 {
	return Clamp(f, 0, 1)
}

// clamp01Byte maps f in [0,1] to a byte in [0,255], clamping out-of-range input.
func clamp01Byte(f float32) byte {
	return byte(Clamp01(f)*255 + 0.5)
}

// RGB8 quantizes v's X,Y,Z lanes (interpreted as r,g,b in [0,1]) to bytes.
func (v V4) RGB8() (r, g, b byte) {
	return clamp01Byte(v.X), clamp01Byte(v.Y), clamp01Byte(v.Z)
}
