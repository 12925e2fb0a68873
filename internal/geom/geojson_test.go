package geom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const featureCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [1, 2, 30]}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0, 0], [4, 4]]}},
    {"type": "Feature", "geometry": {"type": "MultiPolygon", "coordinates": [
      [[[0, 0], [2, 0], [2, 2], [0, 0]]],
      [[[5, 5], [6, 5], [6, -6], [5, 5]]]
    ]}},
    {"type": "Feature", "geometry": null}
  ]
}`

func TestDecodeGeoJSON(t *testing.T) {
	d, err := DecodeGeoJSON(strings.NewReader(featureCollection))
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{1, 2}}, d.Points)
	assert.Len(t, d.Lines, 1)
	assert.Len(t, d.Polygons, 2)
	assert.Equal(t, BBox{0, -6, 6, 5}, d.BBox)
}

func TestDecodeGeoJSONGeometries(t *testing.T) {
	tests := []struct {
		in                   string
		points, lines, polys int
	}{
		{`{"type":"Point","coordinates":[3,4]}`, 1, 0, 0},
		{`{"type":"MultiPoint","coordinates":[[3,4],[5,6]]}`, 2, 0, 0},
		{`{"type":"MultiLineString","coordinates":[[[0,0],[1,1]],[[2,2],[3,3]]]}`, 0, 2, 0},
		{`{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]}`, 0, 0, 1},
		{`{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]}}`, 1, 0, 0},
		{`{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[0,0]},{"type":"LineString","coordinates":[[0,0],[1,2]]}]}`, 1, 1, 0},
	}
	for _, tc := range tests {
		d, err := DecodeGeoJSON(strings.NewReader(tc.in))
		require.NoError(t, err, tc.in)
		assert.Len(t, d.Points, tc.points, tc.in)
		assert.Len(t, d.Lines, tc.lines, tc.in)
		assert.Len(t, d.Polygons, tc.polys, tc.in)
	}
}

func TestDecodeGeoJSONErrors(t *testing.T) {
	tests := []struct {
		in, err string
	}{
		{`{"coordinates":[1,2]}`, "invalid geojson: missing type"},
		{`{"type":"Circle","coordinates":[1,2]}`, "unsupported geojson type: Circle"},
		{`{"type":"FeatureCollection","features":[]}`, "no geometries found"},
		{`{"type":"Point","coordinates":"x"}`, "geojson Point:"},
		{`{"type":`, "geojson:"},
	}
	for _, tc := range tests {
		_, err := DecodeGeoJSON(strings.NewReader(tc.in))
		require.Error(t, err, tc.in)
		assert.Contains(t, err.Error(), tc.err)
	}
}
