package rmath

import (
	math "github.com/chewxy/math32"
)

// M2 is a 2x2 matrix stored in row-major order.
type M2 struct {
	x00, x01 float32
	x10, x11 float32
}

// NewM2RowMajor instantiates a new matrix from the first 4 floats, row major order.
// If v is of insufficient length NewM2RowMajor panics.
func NewM2RowMajor(v []float32) (m M2) {
	_ = v[3]
	m.x00, m.x01, m.x10, m.x11 = v[0], v[1], v[2], v[3]
	return m
}

// IdentityM2 returns the 2x2 identity matrix.
func IdentityM2() M2 {
	return M2{1, 0, 0, 1}
}

// ZeroM2 returns the 2x2 zero matrix.
func ZeroM2() M2 { return M2{} }

// Get returns the element at the given column and row, both 0-indexed.
func (m M2) Get(col, row int) float32 {
	return m.Array()[row*2+col]
}

// Set returns a copy of m with the element at (col,row) replaced by v.
func (m M2) Set(col, row int, v float32) M2 {
	a := m.Array()
	a[row*2+col] = v
	return NewM2RowMajor(a[:])
}

// MulM2 multiplies two 2x2 matrices and returns the result.
func MulM2(a, b M2) (m M2) {
	m.x00 = a.x00*b.x00 + a.x01*b.x10
	m.x01 = a.x00*b.x01 + a.x01*b.x11
	m.x10 = a.x10*b.x00 + a.x11*b.x10
	m.x11 = a.x10*b.x01 + a.x11*b.x11
	return m
}

// AddM2 adds two 2x2 matrices together.
func AddM2(a, b M2) M2 {
	return M2{a.x00 + b.x00, a.x01 + b.x01, a.x10 + b.x10, a.x11 + b.x11}
}

// ScaleM2 multiplies each matrix component by a scalar.
func ScaleM2(f float32, a M2) M2 {
	return M2{f * a.x00, f * a.x01, f * a.x10, f * a.x11}
}

// DivM2 divides each matrix component by a scalar.
func DivM2(a M2, f float32) M2 {
	return ScaleM2(1/f, a)
}

// Determinant returns the determinant of a 2x2 matrix.
func (a M2) Determinant() float32 {
	return a.x00*a.x11 - a.x10*a.x01
}

// Transpose returns the transpose of a.
func (a M2) Transpose() M2 {
	return M2{a.x00, a.x10, a.x01, a.x11}
}

// Array returns the matrix values in a static array copy in row major order.
func (m M2) Array() [4]float32 {
	return [4]float32{m.x00, m.x01, m.x10, m.x11}
}

// EqualM2 tests the equality of 2x2 matrices within a tolerance.
func EqualM2(a, b M2, tol float32) bool {
	return math.Abs(a.x00-b.x00) < tol && math.Abs(a.x01-b.x01) < tol &&
		math.Abs(a.x10-b.x10) < tol && math.Abs(a.x11-b.x11) < tol
}
