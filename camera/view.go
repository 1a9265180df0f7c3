package camera

import (
	"github.com/cza14h/nino-renderer/rmath"
)

// Camera composes a look-at view transform with a perspective Frustum. The
// view matrix is cached and recomputed after LookAt; assigning Eye, Target
// or Up directly does not invalidate it. ViewDirection is computed on each
// call.
type Camera struct {
	Eye, Target, Up rmath.V3
	Frustum         Frustum

	view      rmath.M4
	viewDirty bool
}

// NewCamera builds a Camera looking from eye towards target with the given
// up hint, using frustum for projection. frustum is typically produced by
// NewFrustum, whose construction errors the caller should check first.
func NewCamera(eye, target, up rmath.V3, frustum Frustum) *Camera {
	return &Camera{Eye: eye, Target: target, Up: up, Frustum: frustum, viewDirty: true}
}

// LookAt repositions the camera, invalidating the cached view matrix.
func (c *Camera) LookAt(eye, target, up rmath.V3) {
	c.Eye, c.Target, c.Up = eye, target, up
	c.viewDirty = true
}

// ViewDirection returns normalize(target - eye), the direction the
// rasterizer consumes for backface culling.
func (c *Camera) ViewDirection() rmath.V3 {
	return rmath.UnitV3(rmath.SubV3(c.Target, c.Eye))
}

// View returns the camera's look-at view matrix, transforming world space
// into view space. Cached until the next LookAt call.
func (c *Camera) View() rmath.M4 {
	if c.viewDirty {
		c.view = lookAt(c.Eye, c.Target, c.Up)
		c.viewDirty = false
	}
	return c.view
}

// Projection returns the camera's cached perspective projection matrix.
func (c *Camera) Projection() rmath.M4 {
	return c.Frustum.Projection()
}

// lookAt builds a right-handed view matrix from eye/target/up, the
// conventional construction: the view-space Z axis points from target to
// eye (so view-space Z is "backwards" along the look direction), X is
// right, Y is up, all orthonormal.
func lookAt(eye, target, up rmath.V3) rmath.M4 {
	zAxis := rmath.UnitV3(rmath.SubV3(eye, target))
	xAxis := rmath.UnitV3(rmath.CrossV3(up, zAxis))
	yAxis := rmath.CrossV3(zAxis, xAxis)

	return rmath.NewM4RowMajor([]float32{
		xAxis.X, xAxis.Y, xAxis.Z, -rmath.DotV3(xAxis, eye),
		yAxis.X, yAxis.Y, yAxis.Z, -rmath.DotV3(yAxis, eye),
		zAxis.X, zAxis.Y, zAxis.Z, -rmath.DotV3(zAxis, eye),
		0, 0, 0, 1,
	})
}
