package raster

// Polygon strokes the closed polygon through vertices: a DDA line between
// each pair of consecutive vertices and one from the last back to the
// first. A single vertex draws a single point.
func (r *Rasterizer) Polygon(vertices []Point) error {
	switch len(vertices) {
	case 0:
		return ErrNoVertices
	case 1:
		Logger().Debug("polygon: single vertex", "x", vertices[0].X, "y", vertices[0].Y)
		r.PlotPoint(vertices[0].X, vertices[0].Y)
		return nil
	}
	for i := 1; i < len(vertices); i++ {
		r.LineDDA(vertices[i-1], vertices[i])
	}
	r.LineDDA(vertices[len(vertices)-1], vertices[0])
	return nil
}

// Polyline strokes the open path through vertices with the given line
// algorithm. Fewer than two vertices behave like Polygon.
func (r *Rasterizer) Polyline(alg LineAlgorithm, vertices []Point) error {
	if len(vertices) < 2 {
		return r.Polygon(vertices)
	}
	for i := 1; i < len(vertices); i++ {
		r.Line(alg, vertices[i-1], vertices[i])
	}
	return nil
}
