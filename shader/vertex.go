// Package shader defines the vertex/attribute data model and the
// pluggable vertex and fragment stage function types the rasterizer
// invokes per vertex and per covered pixel.
package shader

import (
	"github.com/cza14h/nino-renderer/rmath"
	"github.com/cza14h/nino-renderer/texture"
)

// Number of fixed slots per attribute type in an AttrRecord. Fixed and
// small so interpolation never allocates; client code names its own slot
// indices with package-level int constants.
const (
	FloatSlots = 4
	V2Slots    = 4
	V3Slots    = 4
	V4Slots    = 4
)

// AttrRecord is a fixed-shape container of per-vertex attributes, indexed
// by slot. Zero-initialized by default.
type AttrRecord struct {
	Float [FloatSlots]float32
	V2    [V2Slots]rmath.V2
	V3    [V3Slots]rmath.V3
	V4    [V4Slots]rmath.V4
}

// Vertex carries a homogeneous position plus its attribute record through
// the pipeline. Position begins as a V3 (w=1) supplied by the client; the
// rasterizer carries copies of it through clip, NDC and screen space and
// does not modify the caller's vertices.
type Vertex struct {
	Position   rmath.V4
	Attributes AttrRecord
}

// NewVertex builds a Vertex from a 3D position with w=1 and a zero
// attribute record.
func NewVertex(position rmath.V3) Vertex {
	return Vertex{Position: position.V4(1)}
}

// VertexRHWInit converts an attribute-less vertex position into its
// homogeneous form (w=1) before transformation. A no-op if w is already
// nonzero; included for parity with vertices constructed by zero value.
func VertexRHWInit(v Vertex) Vertex {
	if v.Position.W == 0 {
		v.Position.W = 1
	}
	return v
}

// VertexFunc transforms a single vertex. Uniforms and the texture store
// are read-only during a draw call.
type VertexFunc func(in Vertex, uniforms Uniforms, textures *texture.Store) Vertex

// FragmentFunc produces a pixel color in linear space from the
// interpolated attribute record.
type FragmentFunc func(attrs AttrRecord, uniforms Uniforms, textures *texture.Store) rmath.V4

// Shader holds the vertex and fragment function values for a draw call.
// Both are independently replaceable; swapping a slot is not a draw
// operation and never happens mid-draw.
type Shader struct {
	Vertex   VertexFunc
	Fragment FragmentFunc
}

// DefaultShader returns the identity vertex shader and an opaque white
// fragment shader, the zero-value-safe default for a freshly constructed
// Renderer.
func DefaultShader() Shader {
	return Shader{
		Vertex:   func(in Vertex, _ Uniforms, _ *texture.Store) Vertex { return in },
		Fragment: func(_ AttrRecord, _ Uniforms, _ *texture.Store) rmath.V4 { return rmath.V4{X: 1, Y: 1, Z: 1, W: 1} },
	}
}

// InterpAttrs linearly interpolates two attribute records component-wise
// by t, used by the wireframe edge walker to step attributes between two
// triangle vertices.
func InterpAttrs(a, b AttrRecord, t float32) AttrRecord {
	var out AttrRecord
	for i := range out.Float {
		out.Float[i] = rmath.Interp(a.Float[i], b.Float[i], t)
	}
	for i := range out.V2 {
		out.V2[i] = rmath.V2{
			X: rmath.Interp(a.V2[i].X, b.V2[i].X, t),
			Y: rmath.Interp(a.V2[i].Y, b.V2[i].Y, t),
		}
	}
	for i := range out.V3 {
		out.V3[i] = rmath.V3{
			X: rmath.Interp(a.V3[i].X, b.V3[i].X, t),
			Y: rmath.Interp(a.V3[i].Y, b.V3[i].Y, t),
			Z: rmath.Interp(a.V3[i].Z, b.V3[i].Z, t),
		}
	}
	for i := range out.V4 {
		out.V4[i] = rmath.V4{
			X: rmath.Interp(a.V4[i].X, b.V4[i].X, t),
			Y: rmath.Interp(a.V4[i].Y, b.V4[i].Y, t),
			Z: rmath.Interp(a.V4[i].Z, b.V4[i].Z, t),
			W: rmath.Interp(a.V4[i].W, b.V4[i].W, t),
		}
	}
	return out
}
