package raster

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// LineAlgorithm selects one of the line scan-conversion algorithms.
// All of them draw both endpoints and draw a single point when the
// endpoints coincide.
type LineAlgorithm int

const (
	DDA LineAlgorithm = iota
	DDASupersampled
	Bresenham
	Midpoint
	MidpointAA
)

var lineAlgorithmNames = [...]string{
	DDA:             "dda",
	DDASupersampled: "dda-ssaa",
	Bresenham:       "bresenham",
	Midpoint:        "midpoint",
	MidpointAA:      "midpoint-aa",
}

func (a LineAlgorithm) String() string {
	if a < 0 || int(a) >= len(lineAlgorithmNames) {
		return fmt.Sprintf("LineAlgorithm(%d)", int(a))
	}
	return lineAlgorithmNames[a]
}

// LineAlgorithms returns every algorithm in menu order.
func LineAlgorithms() []LineAlgorithm {
	return []LineAlgorithm{DDA, DDASupersampled, Bresenham, Midpoint, MidpointAA}
}

// ParseLineAlgorithm accepts the names printed by String, ignoring case.
func ParseLineAlgorithm(s string) (LineAlgorithm, error) {
	for i, name := range lineAlgorithmNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return LineAlgorithm(i), nil
		}
	}
	return 0, fmt.Errorf("raster: unknown line algorithm %q", s)
}

func (a LineAlgorithm) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(lineAlgorithmNames) {
		return nil, fmt.Errorf("raster: invalid line algorithm %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *LineAlgorithm) UnmarshalText(text []byte) error {
	v, err := ParseLineAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Line draws the segment ab with the given algorithm.
func (r *Rasterizer) Line(alg LineAlgorithm, a, b Point) {
	switch alg {
	case DDASupersampled:
		r.LineDDASupersampled(a, b)
	case Bresenham:
		r.LineBresenham(a, b)
	case Midpoint:
		r.LineMidpoint(a, b)
	case MidpointAA:
		r.LineMidpointAA(a, b)
	default:
		r.LineDDA(a, b)
	}
}

// LineDDA draws ab with the digital differential analyzer: unit steps
// along the dominant axis, fractional steps along the other, every point
// rounded.
func (r *Rasterizer) LineDDA(a, b Point) {
	ddaWalk(a, b, r.PlotPoint)
}

// ddaWalk calls plot for the n+1 points of the DDA run from a to b, where
// n = ceil(max(|dx|, |dy|)).
func ddaWalk(a, b Point, plot func(x, y float64)) {
	dx, dy := b.X-a.X, b.Y-a.Y
	n := int(math.Ceil(max(math.Abs(dx), math.Abs(dy))))
	if n == 0 {
		Logger().Debug("degenerate line", "algorithm", DDA, "x", a.X, "y", a.Y)
		plot(a.X, a.Y)
		return
	}
	xInc, yInc := dx/float64(n), dy/float64(n)
	x, y := a.X, a.Y
	plot(x, y)
	for k := 0; k < n; k++ {
		x += xInc
		y += yInc
		plot(x, y)
	}
}

// subsamples are the 3×3 sub-pixel offsets used by LineDDASupersampled.
var subsamples = [3]float64{-1.0 / 3, 0, 1.0 / 3}

// LineDDASupersampled steps like LineDDA. Every visited pixel and its two
// neighbours across the minor axis are sampled 3×3; the fraction of samples
// within half a pixel of the segment becomes the pixel weight. A zero-length
// segment plots its one pixel at full weight.
func (r *Rasterizer) LineDDASupersampled(a, b Point) {
	base := r.sink.Color()
	if a == b {
		Logger().Debug("degenerate line", "algorithm", DDASupersampled, "x", a.X, "y", a.Y)
		_ = r.PlotWeighted([]Point{Pt(float64(round(a.X)), float64(round(a.Y)))}, []Color{base})
		return
	}
	xMajor := math.Abs(b.X-a.X) >= math.Abs(b.Y-a.Y)

	var pts []Point
	var cols []Color
	ddaWalk(a, b, func(x, y float64) {
		px, py := round(x), round(y)
		for off := -1; off <= 1; off++ {
			qx, qy := px, py
			if xMajor {
				qy += off
			} else {
				qx += off
			}
			cov := coverage3x3(a, b, qx, qy)
			if cov == 0 {
				continue
			}
			pts = append(pts, Pt(float64(qx), float64(qy)))
			cols = append(cols, base.WithWeight(cov))
		}
	})
	_ = r.PlotWeighted(pts, cols) // equal lengths by construction
}

// coverage3x3 returns the fraction of the 9 samples of pixel (px, py)
// lying within half a pixel of segment ab.
func coverage3x3(a, b Point, px, py int) float64 {
	hit := 0
	for _, sy := range subsamples {
		for _, sx := range subsamples {
			p := Pt(float64(px)+sx, float64(py)+sy)
			if segmentDist(p, a, b) <= 0.5 {
				hit++
			}
		}
	}
	return float64(hit) / 9
}

// segmentDist returns the distance from p to the closest point of ab.
func segmentDist(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	t := 0.0
	if l2 := dx*dx + dy*dy; l2 > 0 {
		t = clamp01(((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2)
	}
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// LineBresenham draws ab left to right with Bresenham's integer error term.
// It is only correct for |slope| <= 1: steeper lines advance y at most one
// pixel per column and stop short of the far endpoint.
func (r *Rasterizer) LineBresenham(a, b Point) {
	xa, ya, xb, yb := round(a.X), round(a.Y), round(b.X), round(b.Y)
	if xa > xb {
		xa, ya, xb, yb = xb, yb, xa, ya
	}
	dx, dy := xb-xa, abs(yb-ya)
	if dy > dx {
		Logger().Debug("bresenham: slope outside first octant", "dx", dx, "dy", dy)
	}
	yStep := 1
	if yb < ya {
		yStep = -1
	}

	p := 2*dy - dx
	twoDy, twoDyDx := 2*dy, 2*(dy-dx)
	x, y := xa, ya
	r.sink.PlotPixel(x, y)
	for x < xb {
		x++
		if p < 0 {
			p += twoDy
		} else {
			y += yStep
			p += twoDyDx
		}
		r.sink.PlotPixel(x, y)
	}
}

// midpointLine is a line with integer endpoints normalised for midpoint
// stepping: the major axis runs from x0 up to x1 and the minor axis moves
// by step. Coordinates are in stepping space; canvas maps them back.
type midpointLine struct {
	x0, y0, x1 int
	dx, dy     int // dx >= dy >= 0
	step       int
	swapped    bool // x and y exchanged (steep line)
	reversed   bool // stepping runs from b to a
}

func newMidpointLine(a, b Point) midpointLine {
	xa, ya, xb, yb := round(a.X), round(a.Y), round(b.X), round(b.Y)
	var l midpointLine
	if abs(yb-ya) > abs(xb-xa) {
		xa, ya, xb, yb = ya, xa, yb, xb
		l.swapped = true
	}
	if xa > xb {
		xa, ya, xb, yb = xb, yb, xa, ya
		l.reversed = true
	}
	l.x0, l.y0, l.x1 = xa, ya, xb
	l.dx, l.dy = xb-xa, abs(yb-ya)
	l.step = 1
	if yb < ya {
		l.step = -1
	}
	return l
}

// walk calls fn for every pixel of the line in stepping order.
func (l midpointLine) walk(fn func(x, y int)) {
	d := 2*l.dy - l.dx
	x, y := l.x0, l.y0
	fn(x, y)
	for x < l.x1 {
		x++
		if d >= 0 {
			y += l.step
			d += 2 * (l.dy - l.dx)
		} else {
			d += 2 * l.dy
		}
		fn(x, y)
	}
}

func (l midpointLine) canvas(x, y int) (int, int) {
	if l.swapped {
		return y, x
	}
	return x, y
}

// LineMidpoint draws ab with the midpoint algorithm for any slope. Pixels
// are emitted from a to b; the pixel set does not depend on the order of
// the endpoints.
func (r *Rasterizer) LineMidpoint(a, b Point) {
	l := newMidpointLine(a, b)
	if l.dx == 0 {
		Logger().Debug("degenerate line", "algorithm", Midpoint, "x", a.X, "y", a.Y)
	}
	run := make([][2]int, 0, l.dx+1)
	l.walk(func(x, y int) {
		cx, cy := l.canvas(x, y)
		run = append(run, [2]int{cx, cy})
	})
	if l.reversed {
		slices.Reverse(run)
	}
	for _, p := range run {
		r.sink.PlotPixel(p[0], p[1])
	}
}

// aaFalloff is the distance from the ideal line, in pixels, at which the
// weight of an anti-aliased pixel drops to zero.
const aaFalloff = 1.5

// LineMidpointAA draws ab as a three pixel wide band in the manner of
// Gupta and Sproull: midpoint stepping, and for the chosen pixel and its
// two minor-axis neighbours a weight 1 - D/1.5 where D is the
// perpendicular distance to the ideal line.
func (r *Rasterizer) LineMidpointAA(a, b Point) {
	l := newMidpointLine(a, b)
	if l.dx == 0 {
		Logger().Debug("degenerate line", "algorithm", MidpointAA, "x", a.X, "y", a.Y)
		x, y := l.canvas(l.x0, l.y0)
		r.sink.PlotPixel(x, y)
		return
	}

	base := r.sink.Color()
	fdx, fdy := float64(l.dx), float64(l.step*l.dy)
	denom := 2 * math.Sqrt(fdx*fdx+fdy*fdy)

	pts := make([]Point, 0, 3*(l.dx+1))
	cols := make([]Color, 0, 3*(l.dx+1))
	l.walk(func(x, y int) {
		for off := -1; off <= 1; off++ {
			py := y + off
			num := 2 * math.Abs(float64(py-l.y0)*fdx-float64(x-l.x0)*fdy)
			w := 1 - (num/denom)/aaFalloff
			if w <= 0 {
				continue
			}
			cx, cy := l.canvas(x, py)
			pts = append(pts, Pt(float64(cx), float64(cy)))
			cols = append(cols, base.WithWeight(w))
		}
	})
	if l.reversed {
		slices.Reverse(pts)
		slices.Reverse(cols)
	}
	_ = r.PlotWeighted(pts, cols)
}
