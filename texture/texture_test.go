package texture_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/cza14h/nino-renderer/rmath"
	"github.com/cza14h/nino-renderer/texture"
)

func checkerTexture(n int) texture.Texture {
	pix := make([]rmath.V4, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x+y)%2 == 0 {
				pix[y*n+x] = rmath.V4{X: 1, Y: 1, Z: 1, W: 1}
			} else {
				pix[y*n+x] = rmath.V4{W: 1}
			}
		}
	}
	return texture.Texture{W: n, H: n, Pix: pix}
}

func TestSampleNearestCorners(t *testing.T) {
	store := texture.NewStore()
	h := store.Add(checkerTexture(4))
	got, ok := store.Sample(h, rmath.V2{X: 0, Y: 0})
	if !ok {
		t.Fatal("expected sample hit")
	}
	want := (checkerTexture(4)).At(0, 0)
	if got != want {
		t.Fatalf("corner sample = %+v, want %+v", got, want)
	}
}

func TestSampleClampsOutOfRangeUV(t *testing.T) {
	store := texture.NewStore()
	h := store.Add(checkerTexture(4))
	inRange, _ := store.Sample(h, rmath.V2{X: 1, Y: 1})
	clampedAbove, _ := store.Sample(h, rmath.V2{X: 5, Y: 5})
	clampedBelow, _ := store.Sample(h, rmath.V2{X: -5, Y: -5})
	wantLow := (checkerTexture(4)).At(0, 0)
	if inRange != (checkerTexture(4)).At(3, 3) {
		t.Fatalf("uv=(1,1) should sample the last texel")
	}
	if clampedAbove != (checkerTexture(4)).At(3, 3) {
		t.Fatalf("uv>1 should clamp to the last texel")
	}
	if clampedBelow != wantLow {
		t.Fatalf("uv<0 should clamp to the first texel")
	}
}

func TestSampleMissReturnsFalse(t *testing.T) {
	store := texture.NewStore()
	_, ok := store.Sample(texture.Handle(42), rmath.V2{})
	if ok {
		t.Fatal("expected miss for unknown handle")
	}
}

func TestLoadImageFromPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 1, color.RGBA{G: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	tex, err := texture.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tex.W != 2 || tex.H != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", tex.W, tex.H)
	}
	red := tex.At(0, 0)
	if red.X < 0.99 || red.Y > 0.01 {
		t.Fatalf("texel (0,0) = %+v, want red", red)
	}
}
