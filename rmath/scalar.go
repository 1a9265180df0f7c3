// Package rmath implements the fixed-dimension vector, matrix and
// geometry primitives the rasterizer's hot loops are built on. Every
// type holds float32 lanes; functions delegate to chewxy/math32 so the
// pipeline never round-trips through float64.
package rmath

import (
	math "github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Sign returns -1, 0, or 1 for negative, zero or positive x, respectively.
func Sign(x float32) float32 {
	if x == 0 {
		return 0
	}
	return math.Copysign(1, x)
}

// Clamp returns v clamped between lo and hi.
func Clamp(v, lo, hi float32) float32 {
	return math.Min(hi, math.Max(v, lo))
}

// Interp performs linear interpolation between x and y, mapping with a in interval [0,1].
func Interp(x, y, a float32) float32 {
	return x*(1-a) + y*a
}

// EqualWithinAbs checks if a and b are within tol of eachother.
func EqualWithinAbs(a, b, tol float32) bool {
	return math.Abs(a-b) <= tol
}

// ClampOrdered returns v clamped between lo and hi for any ordered type,
// used for the rasterizer's integer pixel-coordinate clamps alongside the
// float32 Clamp above.
func ClampOrdered[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
