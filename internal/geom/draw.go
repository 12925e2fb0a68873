package geom

import "cannons/internal/raster"

// Style controls how Draw strokes shapes.
type Style struct {
	Line raster.LineAlgorithm
	// Clip, when set, restricts strokes to a window with Cohen–Sutherland
	// clipping.
	Clip *raster.Rect
	// PointRadius draws points as circles; 0 plots single pixels.
	PointRadius float64
}

// Draw strokes d through p onto r: polygons ring by ring, line strings
// segment by segment, points as dots or circles. Unclipped DDA polygons go
// through Polygon; everything else is drawn segment by segment.
func Draw(r *raster.Rasterizer, d Data, p Projection, st Style) {
	segment := func(a, b raster.Point) {
		if st.Clip != nil {
			var ok bool
			if a, b, ok = raster.ClipSegment(*st.Clip, a, b); !ok {
				return
			}
		}
		r.Line(st.Line, a, b)
	}

	for _, poly := range d.Polygons {
		for _, ring := range poly {
			pts := p.ApplyAll(ring)
			if len(pts) == 0 {
				continue
			}
			if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
				pts = pts[:len(pts)-1]
			}
			if st.Clip == nil && st.Line == raster.DDA {
				_ = r.Polygon(pts)
				continue
			}
			for i := range pts {
				segment(pts[i], pts[(i+1)%len(pts)])
			}
		}
	}
	for _, ls := range d.Lines {
		pts := p.ApplyAll(ls)
		if len(pts) == 1 {
			segment(pts[0], pts[0])
		}
		for i := 1; i < len(pts); i++ {
			segment(pts[i-1], pts[i])
		}
	}
	for _, q := range d.Points {
		c := p.Apply(q[0], q[1])
		if st.Clip != nil && !st.Clip.Canon().Contains(c) {
			continue
		}
		if st.PointRadius > 0 {
			r.Circle(c, st.PointRadius)
		} else {
			r.PlotPoint(c.X, c.Y)
		}
	}
}
