package rmath

import (
	math "github.com/chewxy/math32"
)

// M4 is a 4x4 matrix stored in row-major order. Get/Set hide the storage
// order so callers never depend on it directly.
type M4 struct {
	x00, x01, x02, x03 float32
	x10, x11, x12, x13 float32
	x20, x21, x22, x23 float32
	x30, x31, x32, x33 float32
}

// NewM4RowMajor instantiates a new matrix from the first 16 values in row
// major order. If v is shorter than 16 it panics.
func NewM4RowMajor(v []float32) (m M4) {
	_ = v[15]
	m.x00, m.x01, m.x02, m.x03 = v[0], v[1], v[2], v[3]
	m.x10, m.x11, m.x12, m.x13 = v[4], v[5], v[6], v[7]
	m.x20, m.x21, m.x22, m.x23 = v[8], v[9], v[10], v[11]
	m.x30, m.x31, m.x32, m.x33 = v[12], v[13], v[14], v[15]
	return m
}

// NewM4ColMajor instantiates a new matrix from the first 16 values in column
// major order. If v is shorter than 16 it panics.
func NewM4ColMajor(v []float32) M4 {
	return NewM4RowMajor(v).Transpose()
}

// IdentityM4 returns the 4x4 identity matrix.
func IdentityM4() M4 {
	return M4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// ZeroM4 returns the 4x4 zero matrix.
func ZeroM4() M4 { return M4{} }

// Translate returns a 4x4 translation matrix t such that
// t·(p,1) = (p+offset, 1) for M4·V4 multiplication.
func Translate(offset V3) M4 {
	return M4{
		1, 0, 0, offset.X,
		0, 1, 0, offset.Y,
		0, 0, 1, offset.Z,
		0, 0, 0, 1,
	}
}

// ScaleM4 returns a 4x4 scaling matrix.
func ScaleM4(v V3) M4 {
	return M4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns the 4x4 rotation matrix around the X axis by angle radians.
func RotateX(angle float32) M4 {
	s, c := math.Sincos(angle)
	return M4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns the 4x4 rotation matrix around the Y axis by angle radians.
func RotateY(angle float32) M4 {
	s, c := math.Sincos(angle)
	return M4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns the 4x4 rotation matrix around the Z axis by angle radians.
func RotateZ(angle float32) M4 {
	s, c := math.Sincos(angle)
	return M4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateEuler returns Rz·Ry·Rx, Z outermost, for the given per-axis angles in radians.
func RotateEuler(angles V3) M4 {
	return MulM4(RotateZ(angles.Z), MulM4(RotateY(angles.Y), RotateX(angles.X)))
}

// Get returns the element at the given column and row, both 0-indexed.
func (m M4) Get(col, row int) float32 {
	return m.Array()[row*4+col]
}

// MulM4 multiplies two 4x4 matrices and returns the result a·b.
func MulM4(a, b M4) (m M4) {
	m.x00 = a.x00*b.x00 + a.x01*b.x10 + a.x02*b.x20 + a.x03*b.x30
	m.x01 = a.x00*b.x01 + a.x01*b.x11 + a.x02*b.x21 + a.x03*b.x31
	m.x02 = a.x00*b.x02 + a.x01*b.x12 + a.x02*b.x22 + a.x03*b.x32
	m.x03 = a.x00*b.x03 + a.x01*b.x13 + a.x02*b.x23 + a.x03*b.x33

	m.x10 = a.x10*b.x00 + a.x11*b.x10 + a.x12*b.x20 + a.x13*b.x30
	m.x11 = a.x10*b.x01 + a.x11*b.x11 + a.x12*b.x21 + a.x13*b.x31
	m.x12 = a.x10*b.x02 + a.x11*b.x12 + a.x12*b.x22 + a.x13*b.x32
	m.x13 = a.x10*b.x03 + a.x11*b.x13 + a.x12*b.x23 + a.x13*b.x33

	m.x20 = a.x20*b.x00 + a.x21*b.x10 + a.x22*b.x20 + a.x23*b.x30
	m.x21 = a.x20*b.x01 + a.x21*b.x11 + a.x22*b.x21 + a.x23*b.x31
	m.x22 = a.x20*b.x02 + a.x21*b.x12 + a.x22*b.x22 + a.x23*b.x32
	m.x23 = a.x20*b.x03 + a.x21*b.x13 + a.x22*b.x23 + a.x23*b.x33

	m.x30 = a.x30*b.x00 + a.x31*b.x10 + a.x32*b.x20 + a.x33*b.x30
	m.x31 = a.x30*b.x01 + a.x31*b.x11 + a.x32*b.x21 + a.x33*b.x31
	m.x32 = a.x30*b.x02 + a.x31*b.x12 + a.x32*b.x22 + a.x33*b.x32
	m.x33 = a.x30*b.x03 + a.x31*b.x13 + a.x32*b.x23 + a.x33*b.x33
	return m
}

// MulV4 multiplies the matrix by a column vector: result = m·v.
// This is the hot path the rasterizer uses to carry a vertex through
// model, view and projection transforms.
func (m M4) MulV4(v V4) V4 {
	return V4{
		X: m.x00*v.X + m.x01*v.Y + m.x02*v.Z + m.x03*v.W,
		Y: m.x10*v.X + m.x11*v.Y + m.x12*v.Z + m.x13*v.W,
		Z: m.x20*v.X + m.x21*v.Y + m.x22*v.Z + m.x23*v.W,
		W: m.x30*v.X + m.x31*v.Y + m.x32*v.Z + m.x33*v.W,
	}
}

// AddM4 adds two 4x4 matrices together.
func AddM4(a, b M4) M4 {
	av, bv := a.Array(), b.Array()
	var r [16]float32
	for i := range av {
		r[i] = av[i] + bv[i]
	}
	return NewM4RowMajor(r[:])
}

// ScaleM4By multiplies each matrix component by a scalar.
func ScaleM4By(f float32, a M4) M4 {
	av := a.Array()
	var r [16]float32
	for i := range av {
		r[i] = f * av[i]
	}
	return NewM4RowMajor(r[:])
}

// DivM4 divides each matrix component by a scalar.
func DivM4(a M4, f float32) M4 {
	return ScaleM4By(1/f, a)
}

// Transpose returns the transpose of a.
func (a M4) Transpose() M4 {
	return M4{
		x00: a.x00, x01: a.x10, x02: a.x20, x03: a.x30,
		x10: a.x01, x11: a.x11, x12: a.x21, x13: a.x31,
		x20: a.x02, x21: a.x12, x22: a.x22, x23: a.x32,
		x30: a.x03, x31: a.x13, x32: a.x23, x33: a.x33,
	}
}

// Determinant returns the determinant of a 4x4 matrix.
func (a M4) Determinant() float32 {
	return a.x00*a.x11*a.x22*a.x33 - a.x00*a.x11*a.x23*a.x32 +
		a.x00*a.x12*a.x23*a.x31 - a.x00*a.x12*a.x21*a.x33 +
		a.x00*a.x13*a.x21*a.x32 - a.x00*a.x13*a.x22*a.x31 -
		a.x01*a.x12*a.x23*a.x30 + a.x01*a.x12*a.x20*a.x33 -
		a.x01*a.x13*a.x20*a.x32 + a.x01*a.x13*a.x22*a.x30 -
		a.x01*a.x10*a.x22*a.x33 + a.x01*a.x10*a.x23*a.x32 +
		a.x02*a.x13*a.x20*a.x31 - a.x02*a.x13*a.x21*a.x30 +
		a.x02*a.x10*a.x21*a.x33 - a.x02*a.x10*a.x23*a.x31 +
		a.x02*a.x11*a.x23*a.x30 - a.x02*a.x11*a.x20*a.x33 -
		a.x03*a.x10*a.x21*a.x32 + a.x03*a.x10*a.x22*a.x31 -
		a.x03*a.x11*a.x22*a.x30 + a.x03*a.x11*a.x20*a.x32 -
		a.x03*a.x12*a.x20*a.x31 + a.x03*a.x12*a.x21*a.x30
}

// Inverse returns the inverse of a 4x4 matrix. Returns a matrix of NaN for a
// singular (non-invertible) input; does not panic.
func (a M4) Inverse() M4 {
	det := a.Determinant()
	if det == 0 {
		return nanM4()
	}
	d := 1.0 / det
	var m M4
	m.x00 = (a.x12*a.x23*a.x31 - a.x13*a.x22*a.x31 + a.x13*a.x21*a.x32 - a.x11*a.x23*a.x32 - a.x12*a.x21*a.x33 + a.x11*a.x22*a.x33) * d
	m.x01 = (a.x03*a.x22*a.x31 - a.x02*a.x23*a.x31 - a.x03*a.x21*a.x32 + a.x01*a.x23*a.x32 + a.x02*a.x21*a.x33 - a.x01*a.x22*a.x33) * d
	m.x02 = (a.x02*a.x13*a.x31 - a.x03*a.x12*a.x31 + a.x03*a.x11*a.x32 - a.x01*a.x13*a.x32 - a.x02*a.x11*a.x33 + a.x01*a.x12*a.x33) * d
	m.x03 = (a.x03*a.x12*a.x21 - a.x02*a.x13*a.x21 - a.x03*a.x11*a.x22 + a.x01*a.x13*a.x22 + a.x02*a.x11*a.x23 - a.x01*a.x12*a.x23) * d
	m.x10 = (a.x13*a.x22*a.x30 - a.x12*a.x23*a.x30 - a.x13*a.x20*a.x32 + a.x10*a.x23*a.x32 + a.x12*a.x20*a.x33 - a.x10*a.x22*a.x33) * d
	m.x11 = (a.x02*a.x23*a.x30 - a.x03*a.x22*a.x30 + a.x03*a.x20*a.x32 - a.x00*a.x23*a.x32 - a.x02*a.x20*a.x33 + a.x00*a.x22*a.x33) * d
	m.x12 = (a.x03*a.x12*a.x30 - a.x02*a.x13*a.x30 - a.x03*a.x10*a.x32 + a.x00*a.x13*a.x32 + a.x02*a.x10*a.x33 - a.x00*a.x12*a.x33) * d
	m.x13 = (a.x02*a.x13*a.x20 - a.x03*a.x12*a.x20 + a.x03*a.x10*a.x22 - a.x00*a.x13*a.x22 - a.x02*a.x10*a.x23 + a.x00*a.x12*a.x23) * d
	m.x20 = (a.x11*a.x23*a.x30 - a.x13*a.x21*a.x30 + a.x13*a.x20*a.x31 - a.x10*a.x23*a.x31 - a.x11*a.x20*a.x33 + a.x10*a.x21*a.x33) * d
	m.x21 = (a.x03*a.x21*a.x30 - a.x01*a.x23*a.x30 - a.x03*a.x20*a.x31 + a.x00*a.x23*a.x31 + a.x01*a.x20*a.x33 - a.x00*a.x21*a.x33) * d
	m.x22 = (a.x01*a.x13*a.x30 - a.x03*a.x11*a.x30 + a.x03*a.x10*a.x31 - a.x00*a.x13*a.x31 - a.x01*a.x10*a.x33 + a.x00*a.x11*a.x33) * d
	m.x23 = (a.x03*a.x11*a.x20 - a.x01*a.x13*a.x20 - a.x03*a.x10*a.x21 + a.x00*a.x13*a.x21 + a.x01*a.x10*a.x23 - a.x00*a.x11*a.x23) * d
	m.x30 = (a.x12*a.x21*a.x30 - a.x11*a.x22*a.x30 - a.x12*a.x20*a.x31 + a.x10*a.x22*a.x31 + a.x11*a.x20*a.x32 - a.x10*a.x21*a.x32) * d
	m.x31 = (a.x01*a.x22*a.x30 - a.x02*a.x21*a.x30 + a.x02*a.x20*a.x31 - a.x00*a.x22*a.x31 - a.x01*a.x20*a.x32 + a.x00*a.x21*a.x32) * d
	m.x32 = (a.x02*a.x11*a.x30 - a.x01*a.x12*a.x30 - a.x02*a.x10*a.x31 + a.x00*a.x12*a.x31 + a.x01*a.x10*a.x32 - a.x00*a.x11*a.x32) * d
	m.x33 = (a.x01*a.x12*a.x20 - a.x02*a.x11*a.x20 + a.x02*a.x10*a.x21 - a.x00*a.x12*a.x21 - a.x01*a.x10*a.x22 + a.x00*a.x11*a.x22) * d
	return m
}

func nanM4() M4 {
	n := math.NaN()
	return M4{
		n, n, n, n,
		n, n, n, n,
		n, n, n, n,
		n, n, n, n,
	}
}

// Put stores the matrix values in b in row-major order. Panics if b is
// shorter than 16.
func (m M4) Put(b []float32) {
	_ = b[15]
	a := m.Array()
	copy(b, a[:])
}

// Array returns the matrix values in a static array copy in row major order.
func (m M4) Array() [16]float32 {
	return [16]float32{
		m.x00, m.x01, m.x02, m.x03,
		m.x10, m.x11, m.x12, m.x13,
		m.x20, m.x21, m.x22, m.x23,
		m.x30, m.x31, m.x32, m.x33,
	}
}

// EqualM4 tests the equality of 4x4 matrices within a tolerance.
func EqualM4(a, b M4, tol float32) bool {
	av, bv := a.Array(), b.Array()
	for i := range av {
		if math.Abs(av[i]-bv[i]) >= tol {
			return false
		}
	}
	return true
}
