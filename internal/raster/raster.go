// Package raster implements the scan-conversion algorithms used by cannons:
// point plotting, five line algorithms, midpoint circles and ellipses,
// polygon stroking, Cohen–Sutherland clipping and boundary fill.
//
// The package owns no pixels. Every shape is emitted pixel by pixel to a
// Sink supplied by the caller, in drawing order.
package raster

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrLengthMismatch = errors.New("raster: points and colors differ in length")
	ErrNoVertices     = errors.New("raster: polygon has no vertices")
	ErrUnreadableSink = errors.New("raster: sink cannot read pixels")
)

// Point is a position in canvas space. Canvas y grows downwards.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Color is a color sample. All channels are in [0,1]; A is the weight
// (coverage) used for anti-aliased plotting.
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b, A: 1} }

// Valid reports whether every channel lies in [0,1].
func (c Color) Valid() bool {
	for _, v := range [4]float64{c.R, c.G, c.B, c.A} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// WithWeight scales the weight of c by w, clamped to [0,1].
func (c Color) WithWeight(w float64) Color {
	c.A = clamp01(c.A * w)
	return c
}

// Sink receives the pixels produced by a Rasterizer.
type Sink interface {
	SetColor(c Color)
	Color() Color
	// PlotPixel writes the current color at (x, y). Coordinates outside
	// the canvas must be ignored.
	PlotPixel(x, y int)
}

// Filler provides the area primitives used for application visuals.
// The rasterizer itself never fills.
type Filler interface {
	Clear(c Color)
	FillRect(min, max Point)
	FillEllipse(c Point, rx, ry float64)
	// FillPath fills the closed polygon pts. Sinks may differ on
	// self-intersecting paths.
	FillPath(pts []Point)
}

// Surface is a sink that can also fill.
type Surface interface {
	Sink
	Filler
}

// PixelReader is implemented by sinks that can report pixel colors.
// ok is false outside the canvas.
type PixelReader interface {
	PixelAt(x, y int) (c Color, ok bool)
}

// Rasterizer converts geometry into pixels on a Sink.
// It is not safe for concurrent use; neither are the sinks in this module.
type Rasterizer struct {
	sink Sink
}

// New returns a Rasterizer drawing on sink.
func New(sink Sink) *Rasterizer {
	return &Rasterizer{sink: sink}
}

// Sink returns the sink r draws on.
func (r *Rasterizer) Sink() Sink { return r.sink }

// round rounds half up.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// PlotPoint plots (x, y) rounded to the nearest pixel in the current color.
func (r *Rasterizer) PlotPoint(x, y float64) {
	r.sink.PlotPixel(round(x), round(y))
}

// PlotWeighted plots points[i] in colors[i] for every i. The sink color in
// effect before the call is restored when the batch is done.
func (r *Rasterizer) PlotWeighted(points []Point, colors []Color) error {
	if len(points) != len(colors) {
		return fmt.Errorf("%w: %d points, %d colors", ErrLengthMismatch, len(points), len(colors))
	}
	if len(points) == 0 {
		return nil
	}
	prev := r.sink.Color()
	defer r.sink.SetColor(prev)
	for i, p := range points {
		r.sink.SetColor(colors[i])
		r.PlotPoint(p.X, p.Y)
	}
	return nil
}

// withColor sets the sink color to c and returns a func restoring the
// previous one. Use as: defer r.withColor(c)().
func (r *Rasterizer) withColor(c Color) func() {
	prev := r.sink.Color()
	r.sink.SetColor(c)
	return func() { r.sink.SetColor(prev) }
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
