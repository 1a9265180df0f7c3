package rmath

import (
	math "github.com/chewxy/math32"
)

// V2 is a 2D vector composed of 2 float32 lanes.
type V2 struct {
	X, Y float32
}

// Array returns the ordered components of v in a 2 element array [v.x,v.y].
func (v V2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}

// AddV2 returns the vector sum of p and q.
func AddV2(p, q V2) V2 {
	return V2{X: p.X + q.X, Y: p.Y + q.Y}
}

// SubV2 returns the vector sum of p and -q.
func SubV2(p, q V2) V2 {
	return V2{X: p.X - q.X, Y: p.Y - q.Y}
}

// ScaleV2 returns the vector p scaled by f.
func ScaleV2(f float32, p V2) V2 {
	return V2{X: f * p.X, Y: f * p.Y}
}

// DotV2 returns the dot product p·q.
func DotV2(p, q V2) float32 {
	return p.X*q.X + p.Y*q.Y
}

// NormV2 returns the Euclidean norm of p.
func NormV2(p V2) float32 {
	return math.Hypot(p.X, p.Y)
}

// UnitV2 returns the unit vector colinear to p. Returns {NaN,NaN} for the zero vector.
func UnitV2(p V2) V2 {
	if p.X == 0 && p.Y == 0 {
		return V2{X: math.NaN(), Y: math.NaN()}
	}
	return ScaleV2(1/NormV2(p), p)
}

// MinElemV2 returns a vector with the minimum components of two vectors.
func MinElemV2(a, b V2) V2 {
	return V2{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElemV2 returns a vector with the maximum components of two vectors.
func MaxElemV2(a, b V2) V2 {
	return V2{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// ClampV2 returns v with its elements clamped between lo and hi's respective components.
func ClampV2(v, lo, hi V2) V2 {
	return V2{X: Clamp(v.X, lo.X, hi.X), Y: Clamp(v.Y, lo.Y, hi.Y)}
}

// EqualV2 checks equality between vector elements to within a tolerance.
func EqualV2(a, b V2, tol float32) bool {
	return EqualWithinAbs(a.X, b.X, tol) && EqualWithinAbs(a.Y, b.Y, tol)
}
