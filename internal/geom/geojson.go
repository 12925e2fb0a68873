package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// geoObject covers the GeoJSON object kinds we read. Positions with more
// than two ordinates are truncated by encoding/json.
type geoObject struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
	Geometry    *geoObject      `json:"geometry"`
	Features    []geoObject     `json:"features"`
	Geometries  []geoObject     `json:"geometries"`
}

// LoadGeoJSON reads a GeoJSON file.
func LoadGeoJSON(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return DecodeGeoJSON(f)
}

// DecodeGeoJSON reads a FeatureCollection, a Feature or a bare geometry.
// Supported geometries: Point, MultiPoint, LineString, MultiLineString,
// Polygon, MultiPolygon and GeometryCollection.
func DecodeGeoJSON(r io.Reader) (Data, error) {
	var root geoObject
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return Data{}, fmt.Errorf("geojson: %w", err)
	}
	if root.Type == "" {
		return Data{}, errors.New("invalid geojson: missing type")
	}
	d := NewData()
	if err := d.walk(root); err != nil {
		return Data{}, err
	}
	if d.Empty() {
		return Data{}, errors.New("no geometries found")
	}
	return d, nil
}

func (d *Data) walk(g geoObject) error {
	switch g.Type {
	case "FeatureCollection":
		for _, f := range g.Features {
			if err := d.walk(f); err != nil {
				return err
			}
		}
		return nil
	case "Feature":
		if g.Geometry == nil {
			return nil
		}
		return d.walk(*g.Geometry)
	case "GeometryCollection":
		for _, sub := range g.Geometries {
			if err := d.walk(sub); err != nil {
				return err
			}
		}
		return nil
	}

	bad := func(err error) error {
		return fmt.Errorf("geojson %s: %w", g.Type, err)
	}
	switch g.Type {
	case "Point":
		var pt [2]float64
		if err := json.Unmarshal(g.Coordinates, &pt); err != nil {
			return bad(err)
		}
		d.addPoint(pt)
	case "MultiPoint":
		var pts [][2]float64
		if err := json.Unmarshal(g.Coordinates, &pts); err != nil {
			return bad(err)
		}
		for _, p := range pts {
			d.addPoint(p)
		}
	case "LineString":
		var ls [][2]float64
		if err := json.Unmarshal(g.Coordinates, &ls); err != nil {
			return bad(err)
		}
		d.addLine(ls)
	case "MultiLineString":
		var mls [][][2]float64
		if err := json.Unmarshal(g.Coordinates, &mls); err != nil {
			return bad(err)
		}
		for _, ls := range mls {
			d.addLine(ls)
		}
	case "Polygon":
		var poly [][][2]float64
		if err := json.Unmarshal(g.Coordinates, &poly); err != nil {
			return bad(err)
		}
		d.addPolygon(poly)
	case "MultiPolygon":
		var mp [][][][2]float64
		if err := json.Unmarshal(g.Coordinates, &mp); err != nil {
			return bad(err)
		}
		for _, poly := range mp {
			d.addPolygon(poly)
		}
	default:
		return fmt.Errorf("unsupported geojson type: %s", g.Type)
	}
	return nil
}
