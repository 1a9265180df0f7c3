// Package camera implements the perspective frustum and look-at camera
// that feed the rasterizer's projection and culling stages.
package camera

import (
	"errors"

	math "github.com/chewxy/math32"
	"github.com/cza14h/nino-renderer/rmath"
)

// Frustum describes a perspective projection volume and lazily derives its
// projection matrix, caching it until a parameter changes.
type Frustum struct {
	near, far, aspect, fovY float32
	proj                    rmath.M4
	dirty                   bool
}

// NewFrustum builds a perspective Frustum. It returns an error if near is
// non-positive, far does not exceed near, aspect is non-positive, or fovY
// is outside (0, pi) — these are construction errors, not panics, per the
// core's error handling policy for invalid camera parameters.
func NewFrustum(near, far, aspect, fovY float32) (Frustum, error) {
	if err := validateFrustum(near, far, aspect, fovY); err != nil {
		return Frustum{}, err
	}
	return Frustum{near: near, far: far, aspect: aspect, fovY: fovY, dirty: true}, nil
}

func validateFrustum(near, far, aspect, fovY float32) error {
	switch {
	case near <= 0:
		return errors.New("camera: near plane distance must be positive")
	case far <= near:
		return errors.New("camera: far plane distance must exceed near")
	case aspect <= 0:
		return errors.New("camera: aspect ratio must be positive")
	case fovY <= 0 || fovY >= math.Pi:
		return errors.New("camera: vertical field of view must be in (0, pi)")
	}
	return nil
}

// SetParams updates the frustum's parameters, invalidating the cached
// projection matrix. Returns an error and leaves the Frustum unchanged if
// the new parameters are invalid.
func (f *Frustum) SetParams(near, far, aspect, fovY float32) error {
	if err := validateFrustum(near, far, aspect, fovY); err != nil {
		return err
	}
	f.near, f.far, f.aspect, f.fovY = near, far, aspect, fovY
	f.dirty = true
	return nil
}

// Near, Far, Aspect and FovY return the frustum's current parameters.
func (f Frustum) Near() float32   { return f.near }
func (f Frustum) Far() float32    { return f.far }
func (f Frustum) Aspect() float32 { return f.aspect }
func (f Frustum) FovY() float32   { return f.fovY }

// Projection returns the frustum's OpenGL-style perspective projection
// matrix, mapping view space to clip space such that the post-divide NDC
// cube is [-1,1]^3. The matrix is cached and only recomputed when
// parameters change.
func (f *Frustum) Projection() rmath.M4 {
	if f.dirty {
		f.proj = perspective(f.near, f.far, f.aspect, f.fovY)
		f.dirty = false
	}
	return f.proj
}

func perspective(near, far, aspect, fovY float32) rmath.M4 {
	tanHalfFov := math.Tan(fovY / 2)
	a := 1 / (aspect * tanHalfFov)
	b := 1 / tanHalfFov
	c := -(far + near) / (far - near)
	d := -(2 * far * near) / (far - near)
	return rmath.NewM4RowMajor([]float32{
		a, 0, 0, 0,
		0, b, 0, 0,
		0, 0, c, d,
		0, 0, -1, 0,
	})
}
