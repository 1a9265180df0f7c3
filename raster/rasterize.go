package raster

import (
	"github.com/cza14h/nino-renderer/rmath"
	"github.com/cza14h/nino-renderer/shader"
	"github.com/cza14h/nino-renderer/texture"
)

// rasterizeTriangle implements stages 4-7: screen AABB, barycentric
// coverage, perspective-correct interpolation, depth test, fragment
// shading and framebuffer write.
func (r *Renderer) rasterizeTriangle(screen [3]rmath.V4, tri [3]clipVertex, tex *texture.Store) {
	pts := [3]rmath.V2{
		{X: screen[0].X, Y: screen[0].Y},
		{X: screen[1].X, Y: screen[1].Y},
		{X: screen[2].X, Y: screen[2].Y},
	}
	box := rmath.BoundPoints(pts[:])
	xmin, xmax, ymin, ymax := box.PixelBounds(r.CanvasWidth(), r.CanvasHeight())

	invZ := [3]float32{1 / screen[0].Z, 1 / screen[1].Z, 1 / screen[2].Z}

	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			p := rmath.V2{X: float32(x), Y: float32(y)}
			bc, ok := rmath.NewBarycentric(p, pts)
			if !ok || !bc.Inside() {
				continue
			}

			invZSum := bc.Alpha*invZ[0] + bc.Beta*invZ[1] + bc.Gamma*invZ[2]
			z := 1 / invZSum

			if r.Depth.Get(x, y) <= z {
				continue
			}

			attrs := interpolateAttrs(tri, bc, invZ, z)
			color := r.Shdr.Fragment(attrs, r.Unif, tex)

			r.Color.Set(x, y, color)
			r.Depth.Set(x, y, z)
		}
	}
}

// interpolateAttrs computes stage 6's perspective-correct attribute
// interpolation over every slot of the three vertices' attribute records.
func interpolateAttrs(tri [3]clipVertex, bc rmath.Barycentric, invZ [3]float32, z float32) shader.AttrRecord {
	a0, a1, a2 := tri[0].attrs, tri[1].attrs, tri[2].attrs
	w0 := bc.Alpha * invZ[0]
	w1 := bc.Beta * invZ[1]
	w2 := bc.Gamma * invZ[2]

	var out shader.AttrRecord
	for i := range out.Float {
		out.Float[i] = (a0.Float[i]*w0 + a1.Float[i]*w1 + a2.Float[i]*w2) * z
	}
	for i := range out.V2 {
		out.V2[i] = rmath.V2{
			X: (a0.V2[i].X*w0 + a1.V2[i].X*w1 + a2.V2[i].X*w2) * z,
			Y: (a0.V2[i].Y*w0 + a1.V2[i].Y*w1 + a2.V2[i].Y*w2) * z,
		}
	}
	for i := range out.V3 {
		out.V3[i] = rmath.V3{
			X: (a0.V3[i].X*w0 + a1.V3[i].X*w1 + a2.V3[i].X*w2) * z,
			Y: (a0.V3[i].Y*w0 + a1.V3[i].Y*w1 + a2.V3[i].Y*w2) * z,
			Z: (a0.V3[i].Z*w0 + a1.V3[i].Z*w1 + a2.V3[i].Z*w2) * z,
		}
	}
	for i := range out.V4 {
		out.V4[i] = rmath.V4{
			X: (a0.V4[i].X*w0 + a1.V4[i].X*w1 + a2.V4[i].X*w2) * z,
			Y: (a0.V4[i].Y*w0 + a1.V4[i].Y*w1 + a2.V4[i].Y*w2) * z,
			Z: (a0.V4[i].Z*w0 + a1.V4[i].Z*w1 + a2.V4[i].Z*w2) * z,
			W: (a0.V4[i].W*w0 + a1.V4[i].W*w1 + a2.V4[i].W*w2) * z,
		}
	}
	return out
}
