package rmath

import (
	math "github.com/chewxy/math32"
)

// AABB2 is a 2D axis-aligned bounding box. A well formed AABB2 has Min
// components smaller than or equal to its Max components.
type AABB2 struct {
	Min, Max V2
}

// BoundPoints returns the smallest AABB2 enclosing every point in pts.
// BoundPoints panics if pts is empty.
func BoundPoints(pts []V2) AABB2 {
	box := AABB2{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		box.Min = MinElemV2(box.Min, p)
		box.Max = MaxElemV2(box.Max, p)
	}
	return box
}

// Empty returns true if the box's area is zero or negative.
func (a AABB2) Empty() bool {
	return a.Min.X >= a.Max.X || a.Min.Y >= a.Max.Y
}

// PixelBounds rounds the box outward to integer pixel coordinates (ceiling
// the minimum, flooring the maximum, per the rasterizer's Stage 4 AABB
// rule) and clamps the result to [0,w-1]x[0,h-1]. The returned bounds are
// half-open: iterate x in [xmin,xmax), y in [ymin,ymax). Note xmax/ymax are
// themselves clamped maxima, not one-past-the-end, so the rightmost and
// bottommost pixel column/row of the clamped box is excluded from
// iteration; this mirrors the reference pipeline's AABB walk exactly.
func (a AABB2) PixelBounds(w, h int) (xmin, xmax, ymin, ymax int) {
	xmin = ClampOrdered(int(math.Ceil(a.Min.X)), 0, w-1)
	ymin = ClampOrdered(int(math.Ceil(a.Min.Y)), 0, h-1)
	xmax = ClampOrdered(int(math.Floor(a.Max.X)), 0, w-1)
	ymax = ClampOrdered(int(math.Floor(a.Max.Y)), 0, h-1)
	return xmin, xmax, ymin, ymax
}
