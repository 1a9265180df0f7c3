package rmath_test

import (
	"math/rand"
	"testing"

	math "github.com/chewxy/math32"
	"github.com/cza14h/nino-renderer/rmath"
)

func TestIdentityM4IsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	id := rmath.IdentityM4()
	for i := 0; i < 20; i++ {
		m := randM4(rng)
		if !rmath.EqualM4(rmath.MulM4(id, m), m, 1e-5) {
			t.Fatalf("identity is not a left identity for %+v", m)
		}
		if !rmath.EqualM4(rmath.MulM4(m, id), m, 1e-5) {
			t.Fatalf("identity is not a right identity for %+v", m)
		}
	}
}

func TestM4InverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		axis := rmath.V3{X: rng.Float32(), Y: rng.Float32(), Z: rng.Float32()}
		rot := rmath.RotateEuler(axis)
		tr := rmath.Translate(rmath.V3{X: rng.Float32() * 10, Y: rng.Float32() * 10, Z: rng.Float32() * 10})
		m := rmath.MulM4(tr, rot)
		inv := m.Inverse()
		got := rmath.MulM4(m, inv)
		if !rmath.EqualM4(got, rmath.IdentityM4(), 1e-3) {
			t.Fatalf("M*M^-1 != identity, got %+v", got)
		}
	}
}

func TestTransposeInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		m := randM4(rng)
		got := m.Transpose().Transpose()
		if !rmath.EqualM4(got, m, 1e-6) {
			t.Fatalf("transpose is not an involution: got %+v want %+v", got, m)
		}
	}
}

func TestTranslateComposes(t *testing.T) {
	a := rmath.V3{X: 1, Y: 2, Z: 3}
	b := rmath.V3{X: -4, Y: 5, Z: 0.5}
	got := rmath.MulM4(rmath.Translate(a), rmath.Translate(b))
	want := rmath.Translate(rmath.AddV3(a, b))
	if !rmath.EqualM4(got, want, 1e-5) {
		t.Fatalf("translate(a)*translate(b) != translate(a+b): got %+v want %+v", got, want)
	}
}

func TestTranslateMapsPoint(t *testing.T) {
	offset := rmath.V3{X: 3, Y: -2, Z: 7}
	p := rmath.V3{X: 1, Y: 1, Z: 1}
	got := rmath.Translate(offset).MulV4(p.V4(1))
	want := rmath.AddV3(p, offset).V4(1)
	if !rmath.EqualV4(got, want, 1e-5) {
		t.Fatalf("translate(t)*(p,1) != (p+t,1): got %+v want %+v", got, want)
	}
}

func TestRotateYKnownValue(t *testing.T) {
	theta := float32(0.7)
	got := rmath.RotateY(theta).MulV4(rmath.V4{Z: 1, W: 1})
	s, c := math.Sincos(theta)
	want := rmath.V4{X: s, Y: 0, Z: c, W: 1}
	if !rmath.EqualV4(got, want, 1e-5) {
		t.Fatalf("rotate_y(theta)*(0,0,1,1) = %+v, want %+v", got, want)
	}
}

func randM4(rng *rand.Rand) rmath.M4 {
	var v [16]float32
	for i := range v {
		v[i] = rng.Float32()*2 - 1
	}
	return rmath.NewM4RowMajor(v[:])
}
