package geom

import (
	"math"

	"cannons/internal/raster"
)

// Projection maps data space (y up) onto canvas space (y down) with a
// uniform scale.
type Projection struct {
	Scale float64
	MinX  float64
	MaxY  float64
	OffX  float64
	OffY  float64
}

// Fit returns the projection that centres b on a w×h canvas, keeping the
// aspect ratio and leaving margin pixels on every side. A box with no
// extent is centred at scale 1.
func Fit(b BBox, w, h int, margin float64) Projection {
	if b.Empty() {
		return Projection{Scale: 1}
	}
	aw := math.Max(float64(w-1)-2*margin, 1)
	ah := math.Max(float64(h-1)-2*margin, 1)
	bw, bh := b.Width(), b.Height()

	s := 1.0
	switch {
	case bw > 0 && bh > 0:
		s = math.Min(aw/bw, ah/bh)
	case bw > 0:
		s = aw / bw
	case bh > 0:
		s = ah / bh
	}
	return Projection{
		Scale: s,
		MinX:  b.MinX,
		MaxY:  b.MaxY,
		OffX:  (float64(w-1) - bw*s) / 2,
		OffY:  (float64(h-1) - bh*s) / 2,
	}
}

// Apply maps a data point to canvas space.
func (p Projection) Apply(x, y float64) raster.Point {
	return raster.Pt(p.OffX+(x-p.MinX)*p.Scale, p.OffY+(p.MaxY-y)*p.Scale)
}

// ApplyAll maps a sequence of data points.
func (p Projection) ApplyAll(pts [][2]float64) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, q := range pts {
		out[i] = p.Apply(q[0], q[1])
	}
	return out
}

// Zoom scales p by z about the canvas point c.
func (p Projection) Zoom(z float64, c raster.Point) Projection {
	p.Scale *= z
	p.OffX = c.X + (p.OffX-c.X)*z
	p.OffY = c.Y + (p.OffY-c.Y)*z
	return p
}

// Pan shifts p by dx, dy canvas pixels.
func (p Projection) Pan(dx, dy float64) Projection {
	p.OffX += dx
	p.OffY += dy
	return p
}
