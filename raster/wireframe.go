package raster

import (
	"github.com/cza14h/nino-renderer/rmath"
	"github.com/cza14h/nino-renderer/shader"
	"github.com/cza14h/nino-renderer/texture"
)

// drawWireframe draws a triangle's three screen-space edges with the
// Bresenham line walker, shading each pixel with the fragment shader fed
// linearly interpolated attributes along the edge. It never depth-tests:
// wireframe is a debug overlay drawn after the solid pass.
func (r *Renderer) drawWireframe(screen [3]rmath.V4, tri [3]clipVertex, tex *texture.Store) {
	edges := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	for _, e := range edges {
		a, b := screen[e[0]], screen[e[1]]
		x0, y0 := int(a.X), int(a.Y)
		x1, y1 := int(b.X), int(b.Y)
		bresenhamLine(x0, y0, x1, y1, func(x, y int) {
			if x < 0 || x >= r.CanvasWidth() || y < 0 || y >= r.CanvasHeight() {
				return
			}
			t := edgeParameter(x0, y0, x1, y1, x, y)
			attrs := shader.InterpAttrs(tri[e[0]].attrs, tri[e[1]].attrs, t)
			color := r.Shdr.Fragment(attrs, r.Unif, tex)
			r.Color.Set(x, y, color)
		})
	}
}

// edgeParameter estimates how far along (x0,y0)->(x1,y1) the point (x,y)
// lies, by projecting onto whichever axis has the larger extent. Used only
// to pick an attribute interpolation weight for the wireframe overlay, not
// for the geometric line walk itself.
func edgeParameter(x0, y0, x1, y1, x, y int) float32 {
	dx, dy := x1-x0, y1-y0
	if dx == 0 && dy == 0 {
		return 0
	}
	if abs(dx) >= abs(dy) {
		return float32(x-x0) / float32(dx)
	}
	return float32(y-y0) / float32(dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
