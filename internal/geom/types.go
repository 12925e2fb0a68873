// Package geom loads 2D shapes from WKT, GeoJSON, KML and CSV and maps them
// onto a canvas.
package geom

import "math"

// BBox is an axis-aligned bounding box in data space.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// EmptyBBox contains nothing; extending it with a point yields that point.
func EmptyBBox() BBox {
	return BBox{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

// Empty reports whether b contains no point at all.
func (b BBox) Empty() bool { return b.MinX > b.MaxX || b.MinY > b.MaxY }

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Extend grows b to contain (x, y).
func (b BBox) Extend(x, y float64) BBox {
	b.MinX = min(b.MinX, x)
	b.MinY = min(b.MinY, y)
	b.MaxX = max(b.MaxX, x)
	b.MaxY = max(b.MaxY, y)
	return b
}

// Union returns the smallest box containing b and o.
func (b BBox) Union(o BBox) BBox {
	if o.Empty() {
		return b
	}
	return b.Extend(o.MinX, o.MinY).Extend(o.MaxX, o.MaxY)
}

// Data is a minimal geometry container for rendering
type Data struct {
	Points   [][2]float64
	Lines    [][][2]float64
	Polygons [][][][2]float64 // polygons with rings (first outer, following holes)
	BBox     BBox
}

// NewData returns an empty container with an empty bounding box.
func NewData() Data { return Data{BBox: EmptyBBox()} }

// Empty reports whether d holds no geometry.
func (d Data) Empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}

// Vertices returns the number of coordinates in d.
func (d Data) Vertices() int {
	n := len(d.Points)
	for _, ls := range d.Lines {
		n += len(ls)
	}
	for _, poly := range d.Polygons {
		for _, ring := range poly {
			n += len(ring)
		}
	}
	return n
}

func (d *Data) addPoint(pt [2]float64) {
	d.Points = append(d.Points, pt)
	d.BBox = d.BBox.Extend(pt[0], pt[1])
}

func (d *Data) addLine(ls [][2]float64) {
	if len(ls) == 0 {
		return
	}
	d.Lines = append(d.Lines, ls)
	for _, p := range ls {
		d.BBox = d.BBox.Extend(p[0], p[1])
	}
}

func (d *Data) addPolygon(poly [][][2]float64) {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return
	}
	d.Polygons = append(d.Polygons, poly)
	for _, ring := range poly {
		for _, p := range ring {
			d.BBox = d.BBox.Extend(p[0], p[1])
		}
	}
}

// Merge appends the geometry of o to d.
func (d *Data) Merge(o Data) {
	d.Points = append(d.Points, o.Points...)
	d.Lines = append(d.Lines, o.Lines...)
	d.Polygons = append(d.Polygons, o.Polygons...)
	d.BBox = d.BBox.Union(o.BBox)
}
