package camera_test

import (
	"testing"

	math "github.com/chewxy/math32"
	"github.com/cza14h/nino-renderer/camera"
	"github.com/cza14h/nino-renderer/rmath"
)

func TestNewFrustumRejectsInvalidParams(t *testing.T) {
	cases := []struct {
		name                         string
		near, far, aspect, fovY float32
	}{
		{"nonpositive near", 0, 10, 1, math.Pi / 2},
		{"negative near", -1, 10, 1, math.Pi / 2},
		{"far not greater than near", 5, 5, 1, math.Pi / 2},
		{"zero aspect", 1, 10, 0, math.Pi / 2},
		{"fov too large", 1, 10, 1, math.Pi},
		{"fov zero", 1, 10, 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := camera.NewFrustum(c.near, c.far, c.aspect, c.fovY); err == nil {
				t.Fatalf("expected construction error for %s", c.name)
			}
		})
	}
}

func TestNewFrustumAcceptsValidParams(t *testing.T) {
	f, err := camera.NewFrustum(1, 5, 1, math.Pi/2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := f.Projection()
	p2 := f.Projection()
	if p != p2 {
		t.Fatal("projection matrix should be cached and stable across calls")
	}
}

func TestViewDirectionNormalized(t *testing.T) {
	f, _ := camera.NewFrustum(1, 5, 1, math.Pi/2)
	cam := camera.NewCamera(rmath.V3{Z: 5}, rmath.V3{}, rmath.V3{Y: 1}, f)
	dir := cam.ViewDirection()
	if !rmath.EqualV3(dir, rmath.V3{Z: -1}, 1e-5) {
		t.Fatalf("view direction = %+v, want (0,0,-1)", dir)
	}
	if !rmath.EqualWithinAbs(rmath.NormV3(dir), 1, 1e-5) {
		t.Fatalf("view direction not normalized: norm = %v", rmath.NormV3(dir))
	}
}

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	f, _ := camera.NewFrustum(1, 5, 1, math.Pi/2)
	eye := rmath.V3{X: 3, Y: 2, Z: 5}
	cam := camera.NewCamera(eye, rmath.V3{}, rmath.V3{Y: 1}, f)
	viewSpaceEye := cam.View().MulV4(eye.V4(1))
	if !rmath.EqualV3(viewSpaceEye.V3(), rmath.V3{}, 1e-4) {
		t.Fatalf("eye in view space should be the origin, got %+v", viewSpaceEye)
	}
}
