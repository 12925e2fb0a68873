// Package canvas provides the pixel sinks the rasterizer draws on: a
// braille terminal canvas and an RGBA image.
//
// Both follow the raster convention that pixel (x, y) is centred on the
// integer point (x, y).
package canvas

import (
	"math"
	"sort"

	"cannons/internal/raster"
)

// scanPath calls span(y, x0, x1) for every run of pixel centres inside the
// closed polygon pts under the even-odd rule, for rows 0 <= y < h.
func scanPath(pts []raster.Point, h int, span func(y, x0, x1 int)) {
	if len(pts) < 3 {
		return
	}
	ymin, ymax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		ymin = min(ymin, p.Y)
		ymax = max(ymax, p.Y)
	}
	y0 := max(0, int(math.Ceil(ymin)))
	y1 := min(h-1, int(math.Floor(ymax)))

	var xs []float64
	for y := y0; y <= y1; y++ {
		yc := float64(y)
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if a.Y == b.Y { // horizontal edge: skip
				continue
			}
			if (yc >= a.Y && yc < b.Y) || (yc >= b.Y && yc < a.Y) {
				t := (yc - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			lo, hi := int(math.Ceil(xs[i])), int(math.Floor(xs[i+1]))
			if lo <= hi {
				span(y, lo, hi)
			}
		}
	}
}

// scanEllipse calls span for every row of pixel centres inside the ellipse
// with centre c and semi-axes rx, ry, for rows 0 <= y < h.
func scanEllipse(c raster.Point, rx, ry float64, h int, span func(y, x0, x1 int)) {
	if rx <= 0 || ry <= 0 {
		return
	}
	y0 := max(0, int(math.Ceil(c.Y-ry)))
	y1 := min(h-1, int(math.Floor(c.Y+ry)))
	for y := y0; y <= y1; y++ {
		t := (float64(y) - c.Y) / ry
		hw := rx * math.Sqrt(max(0, 1-t*t))
		lo, hi := int(math.Ceil(c.X-hw)), int(math.Floor(c.X+hw))
		if lo <= hi {
			span(y, lo, hi)
		}
	}
}

// rectSpan returns the inclusive pixel range covered by the rectangle with
// corners a and b on one axis.
func rectSpan(a, b float64) (int, int) {
	lo, hi := int(math.Floor(a+0.5)), int(math.Floor(b+0.5))
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}
