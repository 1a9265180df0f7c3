// Package texture implements the rasterizer's texture store: a densely
// indexed, add-only collection of f32 RGBA images with nearest-neighbor,
// clamped sampling.
package texture

import (
	"github.com/cza14h/nino-renderer/rmath"
)

// Texture is a decoded 2D image in linear f32 RGBA.
type Texture struct {
	W, H int
	Pix  []rmath.V4
}

// At returns the texel at integer coordinates (x,y). Panics if the flat
// index y*W+x falls outside Pix; x and y are not checked separately.
// Store.Sample clamps before calling it.
func (t Texture) At(x, y int) rmath.V4 {
	return t.Pix[y*t.W+x]
}

// Handle is a stable integer reference into a Store. Handles are never
// invalidated; the store is add-only for the lifetime of a scene.
type Handle int

// Store is a densely indexed, add-only collection of Textures.
type Store struct {
	textures []Texture
}

// NewStore returns an empty texture Store.
func NewStore() *Store {
	return &Store{}
}

// Add appends tex to the store and returns its stable Handle.
func (s *Store) Add(tex Texture) Handle {
	s.textures = append(s.textures, tex)
	return Handle(len(s.textures) - 1)
}

// Get returns the texture for h and true, or the zero Texture and false if
// h does not reference a texture currently in the store. Fragment shaders
// are expected to fall back to a flat color (e.g. white or magenta) on a
// miss; the store itself never errors.
func (s *Store) Get(h Handle) (Texture, bool) {
	if int(h) < 0 || int(h) >= len(s.textures) {
		return Texture{}, false
	}
	return s.textures[h], true
}

// Sample performs nearest-neighbor sampling of the texture referenced by h
// at normalized coordinates uv, clamping uv to [0,1] before indexing. ok is
// false if h does not reference a texture in the store.
func (s *Store) Sample(h Handle, uv rmath.V2) (rmath.V4, bool) {
	tex, ok := s.Get(h)
	if !ok {
		return rmath.V4{}, false
	}
	return sampleNearest(tex, uv), true
}

func sampleNearest(tex Texture, uv rmath.V2) rmath.V4 {
	u := rmath.Clamp01(uv.X) * float32(tex.W-1)
	v := rmath.Clamp01(uv.Y) * float32(tex.H-1)
	x := int(u)
	y := int(v)
	return tex.At(x, y)
}
