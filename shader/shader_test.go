package shader_test

import (
	"testing"

	"github.com/cza14h/nino-renderer/rmath"
	"github.com/cza14h/nino-renderer/shader"
	"github.com/cza14h/nino-renderer/texture"
)

func TestNewVertexSetsHomogeneousW(t *testing.T) {
	v := shader.NewVertex(rmath.V3{X: 1, Y: 2, Z: 3})
	want := rmath.V4{X: 1, Y: 2, Z: 3, W: 1}
	if v.Position != want {
		t.Fatalf("Position = %+v, want %+v", v.Position, want)
	}
}

func TestVertexRHWInitFillsZeroW(t *testing.T) {
	v := shader.Vertex{Position: rmath.V4{X: 1, Y: 1, Z: 1}}
	got := shader.VertexRHWInit(v)
	if got.Position.W != 1 {
		t.Fatalf("W = %v, want 1", got.Position.W)
	}
	v2 := shader.Vertex{Position: rmath.V4{X: 1, Y: 1, Z: 1, W: 2}}
	if got2 := shader.VertexRHWInit(v2); got2.Position.W != 2 {
		t.Fatalf("W = %v, want unchanged 2", got2.Position.W)
	}
}

func TestDefaultShaderIdentityAndWhite(t *testing.T) {
	s := shader.DefaultShader()
	in := shader.NewVertex(rmath.V3{X: 4, Y: 5, Z: 6})
	out := s.Vertex(in, nil, nil)
	if out.Position != in.Position {
		t.Fatalf("default vertex shader should be identity")
	}
	col := s.Fragment(shader.AttrRecord{}, nil, nil)
	if col != (rmath.V4{X: 1, Y: 1, Z: 1, W: 1}) {
		t.Fatalf("default fragment shader = %+v, want opaque white", col)
	}
}

func TestInterpAttrsMidpoint(t *testing.T) {
	var a, b shader.AttrRecord
	a.Float[0] = 0
	b.Float[0] = 10
	a.V3[0] = rmath.V3{X: 0, Y: 0, Z: 0}
	b.V3[0] = rmath.V3{X: 2, Y: 4, Z: 6}
	out := shader.InterpAttrs(a, b, 0.5)
	if out.Float[0] != 5 {
		t.Fatalf("Float[0] = %v, want 5", out.Float[0])
	}
	want := rmath.V3{X: 1, Y: 2, Z: 3}
	if out.V3[0] != want {
		t.Fatalf("V3[0] = %+v, want %+v", out.V3[0], want)
	}
}

func TestInterpAttrsEndpoints(t *testing.T) {
	var a, b shader.AttrRecord
	a.V4[2] = rmath.V4{X: 1, Y: 1, Z: 1, W: 1}
	b.V4[2] = rmath.V4{X: 0, Y: 0, Z: 0, W: 0}
	if got := shader.InterpAttrs(a, b, 0); got.V4[2] != a.V4[2] {
		t.Fatalf("t=0 should equal a")
	}
	if got := shader.InterpAttrs(a, b, 1); got.V4[2] != b.V4[2] {
		t.Fatalf("t=1 should equal b")
	}
}

func TestUniformsTaggedValues(t *testing.T) {
	u := shader.Uniforms{
		"time":    shader.Scalar(1.5),
		"tint":    shader.FromV4(rmath.V4{X: 1, Y: 0, Z: 0, W: 1}),
		"diffuse": shader.FromTexture(texture.Handle(3)),
	}
	if u["time"].Scalar() != 1.5 {
		t.Fatalf("scalar round-trip failed")
	}
	if u["diffuse"].Texture() != texture.Handle(3) {
		t.Fatalf("texture handle round-trip failed")
	}
	if u["tint"].Kind() != shader.KindV4 {
		t.Fatalf("Kind() = %v, want KindV4", u["tint"].Kind())
	}
}

func TestValueAccessorPanicsOnKindMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on kind mismatch")
		}
	}()
	v := shader.Scalar(1)
	_ = v.V3()
}
