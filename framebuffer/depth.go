package framebuffer

import (
	math "github.com/chewxy/math32"
)

// DepthAttachment holds a W*H float32 depth buffer. It starts at +Inf and
// is reset to +Inf by Renderer.ClearDepth; the rasterizer keeps the
// smallest accepted depth per pixel.
type DepthAttachment struct {
	w, h int
	vals []float32
}

// NewDepthAttachment allocates a DepthAttachment of the given dimensions,
// cleared to +Inf.
func NewDepthAttachment(w, h int) *DepthAttachment {
	d := &DepthAttachment{w: w, h: h, vals: make([]float32, w*h)}
	d.Clear(math.Inf(1))
	return d
}

// Width and Height return the attachment's pixel dimensions.
func (d *DepthAttachment) Width() int  { return d.w }
func (d *DepthAttachment) Height() int { return d.h }

// Clear writes v into every depth cell. The far sentinel is +Inf; the
// depth test accepts the smaller of the stored and candidate values.
func (d *DepthAttachment) Clear(v float32) {
	for i := range d.vals {
		d.vals[i] = v
	}
}

// Get returns the depth stored at (x,y). Panics if out of bounds.
func (d *DepthAttachment) Get(x, y int) float32 {
	return d.vals[d.index(x, y)]
}

// Set writes the depth at (x,y). Panics if out of bounds.
func (d *DepthAttachment) Set(x, y int, v float32) {
	d.vals[d.index(x, y)] = v
}

func (d *DepthAttachment) index(x, y int) int {
	if x < 0 || x >= d.w || y < 0 || y >= d.h {
		panic("framebuffer: depth coordinate out of bounds")
	}
	return y*d.w + x
}

// Values returns the attachment's raw backing slice.
func (d *DepthAttachment) Values() []float32 {
	return d.vals
}
