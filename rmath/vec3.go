package rmath

import (
	math "github.com/chewxy/math32"
)

// V3 is a 3D vector composed of 3 float32 lanes.
type V3 struct {
	X, Y, Z float32
}

// Array returns the ordered components of v in a 3 element array [v.x,v.y,v.z].
func (v V3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// V4 promotes v to a 4 vector with the given w component.
func (v V3) V4(w float32) V4 {
	return V4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// AddV3 returns the vector sum of p and q.
func AddV3(p, q V3) V3 {
	return V3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// SubV3 returns the vector sum of p and -q.
func SubV3(p, q V3) V3 {
	return V3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// ScaleV3 returns the vector p scaled by f.
func ScaleV3(f float32, p V3) V3 {
	return V3{X: f * p.X, Y: f * p.Y, Z: f * p.Z}
}

// DotV3 returns the dot product p·q.
func DotV3(p, q V3) float32 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// CrossV3 returns the cross product p×q.
func CrossV3(p, q V3) V3 {
	return V3{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// NormV3 returns the Euclidean norm of p.
func NormV3(p V3) float32 {
	return math.Hypot(p.X, math.Hypot(p.Y, p.Z))
}

// Norm2V3 returns the Euclidean squared norm of p.
func Norm2V3(p V3) float32 {
	return p.X*p.X + p.Y*p.Y + p.Z*p.Z
}

// UnitV3 returns the unit vector colinear to p. Returns {NaN,NaN,NaN} for the zero vector.
func UnitV3(p V3) V3 {
	if p.X == 0 && p.Y == 0 && p.Z == 0 {
		return V3{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
	}
	return ScaleV3(1/NormV3(p), p)
}

// MinElemV3 returns a vector with the minimum components of two vectors.
func MinElemV3(a, b V3) V3 {
	return V3{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxElemV3 returns a vector with the maximum components of two vectors.
func MaxElemV3(a, b V3) V3 {
	return V3{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// EqualV3 checks equality between vector elements to within a tolerance.
func EqualV3(a, b V3, tol float32) bool {
	return EqualWithinAbs(a.X, b.X, tol) && EqualWithinAbs(a.Y, b.Y, tol) && EqualWithinAbs(a.Z, b.Z, tol)
}
