package rmath

import (
	math "github.com/chewxy/math32"
)

// M3 is a 3x3 matrix stored in row-major order.
type M3 struct {
	x00, x01, x02 float32
	x10, x11, x12 float32
	x20, x21, x22 float32
}

// NewM3RowMajor instantiates a new matrix from the first 9 floats, row major
// order. If v is of insufficient length NewM3RowMajor panics.
func NewM3RowMajor(v []float32) (m M3) {
	_ = v[8]
	m.x00, m.x01, m.x02 = v[0], v[1], v[2]
	m.x10, m.x11, m.x12 = v[3], v[4], v[5]
	m.x20, m.x21, m.x22 = v[6], v[7], v[8]
	return m
}

// IdentityM3 returns the 3x3 identity matrix.
func IdentityM3() M3 {
	return M3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// ZeroM3 returns the 3x3 zero matrix.
func ZeroM3() M3 { return M3{} }

// SkewM3 returns the 3x3 skew symmetric matrix (right hand system) of v, such
// that SkewM3(v)·p equals v×p.
func SkewM3(v V3) M3 {
	return M3{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	}
}

// Get returns the element at the given column and row, both 0-indexed.
func (m M3) Get(col, row int) float32 {
	return m.Array()[row*3+col]
}

// MulM3 multiplies two 3x3 matrices and returns the result.
func MulM3(a, b M3) (m M3) {
	m.x00 = a.x00*b.x00 + a.x01*b.x10 + a.x02*b.x20
	m.x01 = a.x00*b.x01 + a.x01*b.x11 + a.x02*b.x21
	m.x02 = a.x00*b.x02 + a.x01*b.x12 + a.x02*b.x22
	m.x10 = a.x10*b.x00 + a.x11*b.x10 + a.x12*b.x20
	m.x11 = a.x10*b.x01 + a.x11*b.x11 + a.x12*b.x21
	m.x12 = a.x10*b.x02 + a.x11*b.x12 + a.x12*b.x22
	m.x20 = a.x20*b.x00 + a.x21*b.x10 + a.x22*b.x20
	m.x21 = a.x20*b.x01 + a.x21*b.x11 + a.x22*b.x21
	m.x22 = a.x20*b.x02 + a.x21*b.x12 + a.x22*b.x22
	return m
}

// AddM3 adds two 3x3 matrices together.
func AddM3(a, b M3) M3 {
	return M3{
		a.x00 + b.x00, a.x01 + b.x01, a.x02 + b.x02,
		a.x10 + b.x10, a.x11 + b.x11, a.x12 + b.x12,
		a.x20 + b.x20, a.x21 + b.x21, a.x22 + b.x22,
	}
}

// ScaleM3 multiplies each matrix component by a scalar.
func ScaleM3(f float32, a M3) M3 {
	return M3{
		f * a.x00, f * a.x01, f * a.x02,
		f * a.x10, f * a.x11, f * a.x12,
		f * a.x20, f * a.x21, f * a.x22,
	}
}

// DivM3 divides each matrix component by a scalar.
func DivM3(a M3, f float32) M3 {
	return ScaleM3(1/f, a)
}

// MulV3 multiplies a V3 position with a rotate/scale matrix.
func (a M3) MulV3(b V3) V3 {
	return V3{
		X: a.x00*b.X + a.x01*b.Y + a.x02*b.Z,
		Y: a.x10*b.X + a.x11*b.Y + a.x12*b.Z,
		Z: a.x20*b.X + a.x21*b.Y + a.x22*b.Z,
	}
}

// Determinant returns the determinant of a 3x3 matrix.
func (a M3) Determinant() float32 {
	return a.x00*(a.x11*a.x22-a.x12*a.x21) -
		a.x01*(a.x10*a.x22-a.x12*a.x20) +
		a.x02*(a.x10*a.x21-a.x11*a.x20)
}

// Transpose returns the transpose of a.
func (a M3) Transpose() M3 {
	return M3{
		a.x00, a.x10, a.x20,
		a.x01, a.x11, a.x21,
		a.x02, a.x12, a.x22,
	}
}

// Array returns the matrix values in a static array copy in row major order.
func (m M3) Array() [9]float32 {
	return [9]float32{
		m.x00, m.x01, m.x02,
		m.x10, m.x11, m.x12,
		m.x20, m.x21, m.x22,
	}
}

// EqualM3 tests the equality of 3x3 matrices within a tolerance.
func EqualM3(a, b M3, tol float32) bool {
	av, bv := a.Array(), b.Array()
	for i := range av {
		if math.Abs(av[i]-bv[i]) >= tol {
			return false
		}
	}
	return true
}
