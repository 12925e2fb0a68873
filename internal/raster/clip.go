package raster

import "strings"

// Rect is an axis-aligned clip window. Bounds are inclusive.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// Valid reports whether the minimum corner does not exceed the maximum one.
func (vp Rect) Valid() bool {
	return vp.XMin <= vp.XMax && vp.YMin <= vp.YMax
}

// Canon returns vp with reversed bounds swapped.
func (vp Rect) Canon() Rect {
	if vp.XMin > vp.XMax {
		vp.XMin, vp.XMax = vp.XMax, vp.XMin
	}
	if vp.YMin > vp.YMax {
		vp.YMin, vp.YMax = vp.YMax, vp.YMin
	}
	return vp
}

// Contains reports whether p lies inside vp or on its border.
func (vp Rect) Contains(p Point) bool {
	return ClassifyPoint(p.X, p.Y, vp) == Inside
}

// Corners returns the corners of vp in drawing order.
func (vp Rect) Corners() []Point {
	return []Point{
		{vp.XMin, vp.YMin}, {vp.XMax, vp.YMin},
		{vp.XMax, vp.YMax}, {vp.XMin, vp.YMax},
	}
}

// Outcode is the Cohen–Sutherland region code of a point.
type Outcode uint8

const (
	Inside Outcode = 0
	Left   Outcode = 1
	Right  Outcode = 2
	Bottom Outcode = 4 // y < YMin
	Top    Outcode = 8 // y > YMax
)

func (o Outcode) String() string {
	if o == Inside {
		return "inside"
	}
	var parts []string
	for _, f := range [...]struct {
		bit  Outcode
		name string
	}{{Left, "left"}, {Right, "right"}, {Bottom, "bottom"}, {Top, "top"}} {
		if o&f.bit != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// ClassifyPoint returns the region code of (x, y) relative to vp.
func ClassifyPoint(x, y float64, vp Rect) Outcode {
	code := Inside
	if x < vp.XMin {
		code |= Left
	} else if x > vp.XMax {
		code |= Right
	}
	if y < vp.YMin {
		code |= Bottom
	} else if y > vp.YMax {
		code |= Top
	}
	return code
}

// maxClipPasses bounds the clipping loop. Every pass clears at least one
// boundary bit of one endpoint, so eight passes always suffice.
const maxClipPasses = 16

// ClipSegment clips p1p2 to vp with the Cohen–Sutherland algorithm. It
// returns the visible part and true, or false when nothing is visible.
// Boundaries are tested in the order top, bottom, right, left.
func ClipSegment(vp Rect, p1, p2 Point) (Point, Point, bool) {
	vp = vp.Canon()
	c1 := ClassifyPoint(p1.X, p1.Y, vp)
	c2 := ClassifyPoint(p2.X, p2.Y, vp)

	for range maxClipPasses {
		if c1|c2 == Inside {
			return p1, p2, true
		}
		if c1&c2 != Inside {
			return p1, p2, false
		}

		out := c1
		if out == Inside {
			out = c2
		}
		dx, dy := p2.X-p1.X, p2.Y-p1.Y
		var q Point
		switch {
		case out&Top != 0:
			if dy == 0 {
				return p1, p2, false
			}
			q = Point{p1.X + dx*(vp.YMax-p1.Y)/dy, vp.YMax}
		case out&Bottom != 0:
			if dy == 0 {
				return p1, p2, false
			}
			q = Point{p1.X + dx*(vp.YMin-p1.Y)/dy, vp.YMin}
		case out&Right != 0:
			if dx == 0 {
				return p1, p2, false
			}
			q = Point{vp.XMax, p1.Y + dy*(vp.XMax-p1.X)/dx}
		default: // Left
			if dx == 0 {
				return p1, p2, false
			}
			q = Point{vp.XMin, p1.Y + dy*(vp.XMin-p1.X)/dx}
		}

		if out == c1 {
			p1, c1 = q, ClassifyPoint(q.X, q.Y, vp)
		} else {
			p2, c2 = q, ClassifyPoint(q.X, q.Y, vp)
		}
	}
	Logger().Debug("clip: pass limit reached", "p1", p1, "p2", p2)
	return p1, p2, false
}

// ClipLine clips p1p2 to vp and draws the visible part with LineDDA. It
// reports whether anything was drawn.
func (r *Rasterizer) ClipLine(vp Rect, p1, p2 Point) bool {
	a, b, ok := ClipSegment(vp, p1, p2)
	if !ok {
		Logger().Debug("clip: rejected", "p1", p1, "p2", p2)
		return false
	}
	r.LineDDA(a, b)
	return true
}
