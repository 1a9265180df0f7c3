package shader

import (
	"fmt"

	"github.com/cza14h/nino-renderer/rmath"
	"github.com/cza14h/nino-renderer/texture"
)

// Kind identifies which field of a Value is populated.
type Kind int

const (
	KindScalar Kind = iota
	KindV2
	KindV3
	KindV4
	KindM2
	KindM3
	KindM4
	KindTexture
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindV2:
		return "v2"
	case KindV3:
		return "v3"
	case KindV4:
		return "v4"
	case KindM2:
		return "m2"
	case KindM3:
		return "m3"
	case KindM4:
		return "m4"
	case KindTexture:
		return "texture"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the uniform types a shader can read:
// scalar, V2/V3/V4, M2/M3/M4 and texture handles. Extraction is by
// explicit accessor, which panics on a Kind mismatch — callers are
// expected to know the shape of the uniforms they declared.
type Value struct {
	kind    Kind
	scalar  float32
	v2      rmath.V2
	v3      rmath.V3
	v4      rmath.V4
	m2      rmath.M2
	m3      rmath.M3
	m4      rmath.M4
	texture texture.Handle
}

func Scalar(f float32) Value           { return Value{kind: KindScalar, scalar: f} }
func FromV2(v rmath.V2) Value          { return Value{kind: KindV2, v2: v} }
func FromV3(v rmath.V3) Value          { return Value{kind: KindV3, v3: v} }
func FromV4(v rmath.V4) Value          { return Value{kind: KindV4, v4: v} }
func FromM2(m rmath.M2) Value          { return Value{kind: KindM2, m2: m} }
func FromM3(m rmath.M3) Value          { return Value{kind: KindM3, m3: m} }
func FromM4(m rmath.M4) Value          { return Value{kind: KindM4, m4: m} }
func FromTexture(h texture.Handle) Value { return Value{kind: KindTexture, texture: h} }

// Kind reports which accessor is valid for v.
func (v Value) Kind() Kind { return v.kind }

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("shader: uniform value is %s, not %s", v.kind, k))
	}
}

func (v Value) Scalar() float32 {
	v.mustBe(KindScalar)
	return v.scalar
}
func (v Value) V2() rmath.V2 {
	v.mustBe(KindV2)
	return v.v2
}
func (v Value) V3() rmath.V3 {
	v.mustBe(KindV3)
	return v.v3
}
func (v Value) V4() rmath.V4 {
	v.mustBe(KindV4)
	return v.v4
}
func (v Value) M2() rmath.M2 {
	v.mustBe(KindM2)
	return v.m2
}
func (v Value) M3() rmath.M3 {
	v.mustBe(KindM3)
	return v.m3
}
func (v Value) M4() rmath.M4 {
	v.mustBe(KindM4)
	return v.m4
}
func (v Value) Texture() texture.Handle {
	v.mustBe(KindTexture)
	return v.texture
}

// Uniforms maps a string key to a tagged Value. Owned by the renderer,
// mutable between frames, never mutated during a draw call.
type Uniforms map[string]Value
