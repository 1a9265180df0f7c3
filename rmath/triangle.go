package rmath

// Barycentric is the triple (alpha, beta, gamma) locating a 2D sample point
// relative to a triangle's vertices. alpha+beta+gamma sums to 1 within
// floating point tolerance.
type Barycentric struct {
	Alpha, Beta, Gamma float32
}

// NewBarycentric computes the barycentric coordinates of p with respect to
// the triangle tri, using the standard edge-function formulation. ok is
// false when tri is degenerate (zero signed area), in which case the
// returned Barycentric is the zero value and must not be used.
func NewBarycentric(p V2, tri [3]V2) (bc Barycentric, ok bool) {
	v0, v1, v2 := tri[0], tri[1], tri[2]
	denom := (v1.Y-v2.Y)*(v0.X-v2.X) + (v2.X-v1.X)*(v0.Y-v2.Y)
	if denom == 0 {
		return Barycentric{}, false
	}
	alpha := ((v1.Y-v2.Y)*(p.X-v2.X) + (v2.X-v1.X)*(p.Y-v2.Y)) / denom
	beta := ((v2.Y-v0.Y)*(p.X-v2.X) + (v0.X-v2.X)*(p.Y-v2.Y)) / denom
	gamma := 1 - alpha - beta
	return Barycentric{Alpha: alpha, Beta: beta, Gamma: gamma}, true
}

// Inside reports whether the sample point lies within (or on the boundary
// of) the triangle, i.e. all three barycentric components are non-negative.
func (bc Barycentric) Inside() bool {
	return bc.Alpha >= 0 && bc.Beta >= 0 && bc.Gamma >= 0
}
