// Package raster implements the triangle rasterization pipeline: vertex
// shading, backface culling, perspective divide and viewport mapping,
// scanline coverage over a screen-space AABB, perspective-correct
// attribute interpolation, depth testing, fragment shading, and an
// optional wireframe overlay drawn with a Bresenham line walker.
package raster

import (
	"fmt"

	math "github.com/chewxy/math32"
	"github.com/cza14h/nino-renderer/camera"
	"github.com/cza14h/nino-renderer/framebuffer"
	"github.com/cza14h/nino-renderer/rmath"
	"github.com/cza14h/nino-renderer/shader"
	"github.com/cza14h/nino-renderer/texture"
)

// FaceCull selects which winding a draw call discards.
type FaceCull int

const (
	CullNone FaceCull = iota
	CullFront
	CullBack
)

// FrontFace selects which winding order is considered front-facing.
type FrontFace int

const (
	FrontCW FrontFace = iota
	FrontCCW
)

// Viewport maps NDC x/y into a pixel rectangle of the color attachment.
type Viewport struct {
	X, Y, W, H int
}

// Renderer owns a color and depth attachment, a camera, a shader, its
// uniforms and texture store, and the behavior-configuration flags that
// shape a draw call. Behavior configuration is plain value fields rather
// than a backend interface hierarchy: there is exactly one CPU backend.
type Renderer struct {
	Color *framebuffer.ColorAttachment
	Depth *framebuffer.DepthAttachment
	Cam   *camera.Camera
	Shdr  shader.Shader
	Unif  shader.Uniforms
	Tex   *texture.Store

	Wireframe bool
	Cull      FaceCull
	Front     FrontFace
	Viewport  Viewport
}

// New builds a Renderer of the given pixel dimensions bound to cam, with
// the default shader, an empty uniform map, a fresh texture store, face
// culling disabled (CullNone, FrontCCW) and the viewport set to the full
// canvas.
func New(w, h int, cam *camera.Camera) *Renderer {
	return &Renderer{
		Color:    framebuffer.NewColorAttachment(w, h),
		Depth:    framebuffer.NewDepthAttachment(w, h),
		Cam:      cam,
		Shdr:     shader.DefaultShader(),
		Unif:     shader.Uniforms{},
		Tex:      texture.NewStore(),
		Cull:     CullNone,
		Front:    FrontCCW,
		Viewport: Viewport{X: 0, Y: 0, W: w, H: h},
	}
}

// Clear fills the color attachment with color; depth is untouched.
func (r *Renderer) Clear(color rmath.V4) {
	r.Color.Clear(color)
}

// ClearDepth fills the depth attachment with the far sentinel (+Inf).
func (r *Renderer) ClearDepth() {
	r.Depth.Clear(math.Inf(1))
}

// CanvasWidth and CanvasHeight return the color attachment's pixel
// dimensions.
func (r *Renderer) CanvasWidth() int  { return r.Color.Width() }
func (r *Renderer) CanvasHeight() int { return r.Color.Height() }

// FrameImage borrows the 3*W*H RGB8 byte slice of the color attachment.
// Valid until the next mutating call on the renderer.
func (r *Renderer) FrameImage() []byte {
	return r.Color.Bytes()
}

// ShaderMut returns a pointer to the renderer's shader slot for in-place
// replacement of the vertex or fragment function.
func (r *Renderer) ShaderMut() *shader.Shader {
	return &r.Shdr
}

// UniformsMut returns the renderer's uniform map for direct mutation.
// Never call this during a draw; uniforms are read-only for its duration.
func (r *Renderer) UniformsMut() shader.Uniforms {
	return r.Unif
}

func (r *Renderer) EnableWireframe()  { r.Wireframe = true }
func (r *Renderer) DisableWireframe() { r.Wireframe = false }
func (r *Renderer) ToggleWireframe()  { r.Wireframe = !r.Wireframe }

func (r *Renderer) SetFaceCull(c FaceCull)   { r.Cull = c }
func (r *Renderer) SetFrontFace(f FrontFace) { r.Front = f }

// clipVertex is a vertex's clip-space position together with its attribute
// record. Stage 3 writes the screen-space positions and the positive
// view-space depth into a separate array (see viewportMap).
type clipVertex struct {
	position rmath.V4
	attrs    shader.AttrRecord
}

// DrawTriangle runs stages 1-7 of the pipeline over every triangle in
// vertices, interpreted as a flat triple list. model is the per-draw
// model matrix; tex is the texture store visible to both shader stages.
// Returns an error if len(vertices) is not a multiple of 3.
func (r *Renderer) DrawTriangle(model rmath.M4, vertices []shader.Vertex, tex *texture.Store) error {
	if len(vertices)%3 != 0 {
		return fmt.Errorf("raster: vertex slice length %d is not a multiple of 3", len(vertices))
	}
	view := r.Cam.View()
	proj := r.Cam.Projection()
	mvp := rmath.MulM4(proj, rmath.MulM4(view, model))
	viewDir := r.Cam.ViewDirection()

	for t := 0; t+3 <= len(vertices); t += 3 {
		tri := [3]clipVertex{}
		for i := 0; i < 3; i++ {
			shaded := r.Shdr.Vertex(vertices[t+i], r.Unif, tex)
			tri[i] = clipVertex{position: mvp.MulV4(shaded.Position), attrs: shaded.Attributes}
		}

		if r.cullTriangle(tri, viewDir) {
			continue
		}

		screen := r.viewportMap(tri)

		r.rasterizeTriangle(screen, tri, tex)

		if r.Wireframe {
			r.drawWireframe(screen, tri, tex)
		}
	}
	return nil
}

// viewportMap performs stage 3: perspective divide and viewport mapping.
// Returns the three screen-space positions, x/y in pixel coordinates and
// z holding the positive view-space depth used for perspective-correct
// interpolation.
func (r *Renderer) viewportMap(tri [3]clipVertex) [3]rmath.V4 {
	var out [3]rmath.V4
	vp := r.Viewport
	for i, v := range tri {
		wClip := v.position.W
		zForInterp := wClip // projection sets w_clip = -z_view > 0 in front of the camera
		ndcX := v.position.X / wClip
		ndcY := v.position.Y / wClip
		screenX := (ndcX+1)*0.5*float32(vp.W-1) + float32(vp.X)
		screenY := (ndcY+1)*0.5*float32(vp.H-1) + float32(vp.Y)
		out[i] = rmath.V4{
			X: screenX,
			Y: screenY,
			Z: zForInterp,
			W: (wClip + 1) / 2,
		}
	}
	return out
}
