// Package raster fills a projected wall into a framebuffer as vertical spans.
package raster

import (
	"image/color"

	"chosenoffset.com/wallview/internal/framebuffer"
	"chosenoffset.com/wallview/internal/projection"
)

// DrawWall fills the columns between q.X1 and q.X2 with c. At each column the
// bottom and top heights are interpolated linearly between the edge values.
//
// Column bounds are clamped to [1, width-1] and row bounds to [1, height-1].
// Interpolation always runs against the unclamped span, so a wall that leaves
// the screen is cut off rather than re-fitted.
func DrawWall(fb *framebuffer.Framebuffer, q projection.Quad, c color.RGBA) {
	w, h := fb.Width(), fb.Height()

	dyb := q.B2 - q.B1
	dyt := q.T2 - q.T1
	dx := q.X2 - q.X1
	x1, x2 := q.X1, q.X2
	if dx == 0 {
		// Degenerate span: draw a one column sliver.
		dx = 1
		x2 = x1 + 1
	}
	xs := q.X1

	x1 = clamp(x1, 1, w-1)
	x2 = clamp(x2, 1, w-1)

	for x := x1; x < x2; x++ {
		t := float64(x-xs) + 0.5
		y1 := int(float64(dyb)*t/float64(dx)) + q.B1
		y2 := int(float64(dyt)*t/float64(dx)) + q.T1

		y1 = clamp(y1, 1, h-1)
		y2 = clamp(y2, 1, h-1)

		for y := y1; y < y2; y++ {
			fb.Set(x, y, c)
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
