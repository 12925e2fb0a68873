package raster

import "math"

// Circle draws the circle of radius r around c with the midpoint algorithm.
// Each computed octant point is mirrored into all eight octants and every
// mirror is plotted, so points on the diagonals and axes are written more
// than once. The radius is rounded to whole pixels first. A negative or
// non-finite radius draws nothing.
func (r *Rasterizer) Circle(c Point, radius float64) {
	if radius < 0 || !finite(radius) {
		Logger().Debug("circle: bad radius", "r", radius)
		return
	}
	radius = float64(round(radius))
	x, y := 0.0, radius
	p := 1 - radius
	r.circlePoints(c, x, y)
	for x < y {
		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
		r.circlePoints(c, x, y)
	}
}

func (r *Rasterizer) circlePoints(c Point, x, y float64) {
	r.PlotPoint(c.X+x, c.Y+y)
	r.PlotPoint(c.X-x, c.Y+y)
	r.PlotPoint(c.X+x, c.Y-y)
	r.PlotPoint(c.X-x, c.Y-y)
	r.PlotPoint(c.X+y, c.Y+x)
	r.PlotPoint(c.X-y, c.Y+x)
	r.PlotPoint(c.X+y, c.Y-x)
	r.PlotPoint(c.X-y, c.Y-x)
}

// Ellipse draws the axis-aligned ellipse with semi-axes rx and ry around c
// using the two-region midpoint algorithm with four-way symmetry. Both radii
// are rounded to whole pixels first, so with rx == ry it produces the same
// pixels as Circle. Negative or non-finite radii draw nothing.
func (r *Rasterizer) Ellipse(c Point, rx, ry float64) {
	if rx < 0 || ry < 0 || !finite(rx) || !finite(ry) {
		Logger().Debug("ellipse: bad radius", "rx", rx, "ry", ry)
		return
	}
	rx, ry = float64(round(rx)), float64(round(ry))
	rx2, ry2 := rx*rx, ry*ry
	twoRx2, twoRy2 := 2*rx2, 2*ry2
	x, y := 0.0, ry
	px, py := 0.0, twoRx2*y

	r.ellipsePoints(c, x, y)

	// Region 1: slope magnitude below 1, step x.
	p := float64(round(ry2 - rx2*ry + 0.25*rx2))
	for px < py {
		x++
		px += twoRy2
		if p < 0 {
			p += ry2 + px
		} else {
			y--
			py -= twoRx2
			p += ry2 + px - py
		}
		r.ellipsePoints(c, x, y)
	}

	// Region 2: step y down to the major axis.
	p = float64(round(ry2*(x+0.5)*(x+0.5) + rx2*(y-1)*(y-1) - rx2*ry2))
	for y > 0 {
		y--
		py -= twoRx2
		if p > 0 {
			p += rx2 - py
		} else {
			x++
			px += twoRy2
			p += rx2 - py + px
		}
		r.ellipsePoints(c, x, y)
	}
}

func (r *Rasterizer) ellipsePoints(c Point, x, y float64) {
	r.PlotPoint(c.X+x, c.Y+y)
	r.PlotPoint(c.X-x, c.Y+y)
	r.PlotPoint(c.X+x, c.Y-y)
	r.PlotPoint(c.X-x, c.Y-y)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
