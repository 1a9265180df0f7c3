package raster

import "github.com/cza14h/nino-renderer/rmath"

// DrawLine draws a solid-color line from (x0,y0) to (x1,y1) directly into
// the color attachment, clipping pixels outside the canvas. It does not
// depth-test; this is the standalone line-drawer entry point independent
// of a triangle draw, for callers that want a raw Bresenham primitive.
func (r *Renderer) DrawLine(x0, y0, x1, y1 int, color rmath.V4) {
	w, h := r.CanvasWidth(), r.CanvasHeight()
	bresenhamLine(x0, y0, x1, y1, func(x, y int) {
		if x < 0 || x >= w || y < 0 || y >= h {
			return
		}
		r.Color.Set(x, y, color)
	})
}

// bresenhamLine walks the integer pixels between (x0,y0) and (x1,y1)
// inclusive, calling plot for each one in order from (x0,y0) to (x1,y1),
// including both endpoints. The reference algorithm this is grounded on
// stops one pixel short of the second endpoint; this version corrects
// that so both ends are always drawn.
//
// A single running error accumulator is direction-dependent: walking the
// same pair of endpoints in opposite call orders can land on different
// pixels at an exact slope tie (e.g. a 2:1 ratio). To make the drawn
// pixel set a pure function of the unordered endpoint pair, the walk
// always runs internally from the lexicographically smaller endpoint to
// the larger one, and the result is reversed before emitting if the
// caller's order was the other way around.
func bresenhamLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	if lexLess(x1, y1, x0, y0) {
		pts := walkBresenham(x1, y1, x0, y0)
		for i := len(pts) - 1; i >= 0; i-- {
			plot(pts[i][0], pts[i][1])
		}
		return
	}
	for _, p := range walkBresenham(x0, y0, x1, y1) {
		plot(p[0], p[1])
	}
}

// lexLess reports whether (ax,ay) sorts before (bx,by), comparing x then y.
func lexLess(ax, ay, bx, by int) bool {
	if ax != bx {
		return ax < bx
	}
	return ay < by
}

// walkBresenham runs the standard integer Bresenham walk from (x0,y0) to
// (x1,y1) inclusive, in that order. Two fast paths handle pure vertical
// and horizontal lines. The general path iterates along whichever of dx,
// dy has the larger magnitude, with an error accumulator that starts at
// -major and advances by 2*minor per step, subtracting 2*major and
// stepping the minor axis whenever it crosses zero.
func walkBresenham(x0, y0, x1, y1 int) [][2]int {
	var pts [][2]int
	dx := x1 - x0
	dy := y1 - y0

	if dx == 0 {
		stepY := signInt(dy)
		if stepY == 0 {
			return [][2]int{{x0, y0}}
		}
		for y := y0; ; y += stepY {
			pts = append(pts, [2]int{x0, y})
			if y == y1 {
				return pts
			}
		}
	}

	if dy == 0 {
		stepX := signInt(dx)
		for x := x0; ; x += stepX {
			pts = append(pts, [2]int{x, y0})
			if x == x1 {
				return pts
			}
		}
	}

	adx, ady := abs(dx), abs(dy)
	stepX, stepY := signInt(dx), signInt(dy)

	if adx >= ady {
		err := -adx
		y := y0
		for x := x0; ; x += stepX {
			pts = append(pts, [2]int{x, y})
			if x == x1 {
				return pts
			}
			err += 2 * ady
			if err > 0 {
				y += stepY
				err -= 2 * adx
			}
		}
	}

	err := -ady
	x := x0
	for y := y0; ; y += stepY {
		pts = append(pts, [2]int{x, y})
		if y == y1 {
			return pts
		}
		err += 2 * adx
		if err > 0 {
			x += stepX
			err -= 2 * ady
		}
	}
}

func signInt(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
