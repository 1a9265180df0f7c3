// Package framebuffer implements the renderer's color and depth
// attachments: fixed-size pixel buffers with bounds-checked access and raw
// byte/float slice views for the host to blit or the depth test to read.
package framebuffer

import (
	"fmt"

	"github.com/cza14h/nino-renderer/rmath"
)

// ColorAttachment holds an RGB8, row-major pixel buffer: 3*W*H bytes, top
// row first, no padding, no alpha channel.
type ColorAttachment struct {
	w, h int
	pix  []byte
}

// NewColorAttachment allocates a ColorAttachment of the given dimensions.
func NewColorAttachment(w, h int) *ColorAttachment {
	return &ColorAttachment{w: w, h: h, pix: make([]byte, 3*w*h)}
}

// Width and Height return the attachment's pixel dimensions.
func (c *ColorAttachment) Width() int  { return c.w }
func (c *ColorAttachment) Height() int { return c.h }

// Clear writes color's quantized RGB channels into every pixel.
func (c *ColorAttachment) Clear(color rmath.V4) {
	r, g, b := color.RGB8()
	for i := 0; i < len(c.pix); i += 3 {
		c.pix[i], c.pix[i+1], c.pix[i+2] = r, g, b
	}
}

// Set writes a pixel's RGB channels, quantizing color from linear [0,1]
// floats to u8. Panics if (x,y) is out of bounds — coordinates reaching
// here are expected to already be clamped by the rasterizer.
func (c *ColorAttachment) Set(x, y int, color rmath.V4) {
	i := c.index(x, y)
	r, g, b := color.RGB8()
	c.pix[i], c.pix[i+1], c.pix[i+2] = r, g, b
}

// At returns the RGB8 triple stored at (x,y). Panics if out of bounds.
func (c *ColorAttachment) At(x, y int) (r, g, b byte) {
	i := c.index(x, y)
	return c.pix[i], c.pix[i+1], c.pix[i+2]
}

func (c *ColorAttachment) index(x, y int) int {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		panic(fmt.Sprintf("framebuffer: color coordinate (%d,%d) out of bounds for %dx%d attachment", x, y, c.w, c.h))
	}
	return 3 * (y*c.w + x)
}

// Bytes returns the attachment's raw RGB8 backing slice. The slice is
// valid until the next mutating call on the attachment.
func (c *ColorAttachment) Bytes() []byte {
	return c.pix
}
