package texture

import (
	"image"
	_ "image/png" // register the PNG decoder with image.Decode
	"io"

	"github.com/anthonynsimon/bild/clone"
	"github.com/cza14h/nino-renderer/rmath"
)

// LoadImage converts a decoded standard library image into a Texture,
// normalizing it to RGBA first (via bild/clone.AsRGBA) so paletted, gray
// and other image.Image implementations are handled uniformly.
func LoadImage(img image.Image) Texture {
	rgba := clone.AsRGBA(img)
	bounds := rgba.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]rmath.V4, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := rgba.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pix[y*w+x] = rmath.V4{
				X: float32(r) / 0xffff,
				Y: float32(g) / 0xffff,
				Z: float32(b) / 0xffff,
				W: float32(a) / 0xffff,
			}
		}
	}
	return Texture{W: w, H: h, Pix: pix}
}

// Decode reads and decodes an image (PNG, or any format registered with
// the standard image package) from r into a Texture.
func Decode(r io.Reader) (Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return Texture{}, err
	}
	return LoadImage(img), nil
}
