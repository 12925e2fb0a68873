package geom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleKML = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Folder>
      <Placemark><Point><coordinates>10,20,0</coordinates></Point></Placemark>
      <Placemark>
        <LineString><coordinates>0,0 5,5 10,0</coordinates></LineString>
      </Placemark>
    </Folder>
    <Placemark>
      <MultiGeometry>
        <Polygon>
          <outerBoundaryIs><LinearRing><coordinates>0,0 4,0 4,4 0,0</coordinates></LinearRing></outerBoundaryIs>
          <innerBoundaryIs><LinearRing><coordinates>1,1 2,1 2,2 1,1</coordinates></LinearRing></innerBoundaryIs>
        </Polygon>
      </MultiGeometry>
    </Placemark>
  </Document>
</kml>`

func TestDecodeKML(t *testing.T) {
	d, err := DecodeKML(strings.NewReader(sampleKML))
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{10, 20}}, d.Points)
	require.Len(t, d.Lines, 1)
	assert.Len(t, d.Lines[0], 3)
	require.Len(t, d.Polygons, 1)
	assert.Len(t, d.Polygons[0], 2)
	assert.Equal(t, BBox{0, 0, 10, 20}, d.BBox)

	_, err = DecodeKML(strings.NewReader(`<kml><Document/></kml>`))
	assert.EqualError(t, err, "kml: no geometry found")
}

func TestDecodeCSV(t *testing.T) {
	d, err := DecodeCSV(strings.NewReader(`Lon, Lat, path
1, 2,
3, 4, a
5, 6, b
7, 8, a
oops, 1, a
`))
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{1, 2}, {5, 6}}, d.Points)
	assert.Equal(t, [][][2]float64{{{3, 4}, {7, 8}}}, d.Lines)
	assert.Equal(t, BBox{1, 2, 7, 8}, d.BBox)

	_, err = DecodeCSV(strings.NewReader("a,b\n1,2\n"))
	assert.EqualError(t, err, "csv: x/y columns not found")
	_, err = DecodeCSV(strings.NewReader(""))
	assert.EqualError(t, err, "empty csv")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	d, err := Load(write("shapes.wkt", "LINESTRING (0 0, 3 4)\nPOINT (1 1)\n"))
	require.NoError(t, err)
	assert.Len(t, d.Lines, 1)

	d, err = Load(write("shapes.GEOJSON", featureCollection))
	require.NoError(t, err)
	assert.Len(t, d.Polygons, 2)

	d, err = Load(write("pins.kml", sampleKML))
	require.NoError(t, err)
	assert.Len(t, d.Points, 1)

	d, err = Load(write("pts.csv", "x,y\n1,1\n"))
	require.NoError(t, err)
	assert.Len(t, d.Points, 1)

	_, err = Load(write("bad.wkt", "TRIANGLE (1 1)"))
	assert.EqualError(t, err, `bad.wkt: line 1: unsupported wkt type "TRIANGLE"`)

	_, err = Load(filepath.Join(dir, "notes.txt"))
	assert.EqualError(t, err, "unsupported file type: .txt")

	_, err = Load(filepath.Join(dir, "missing.geojson"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.True(t, Supported("a/b/c.Wkt"))
	assert.False(t, Supported("c.shp"))
}
