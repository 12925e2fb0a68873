package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPlacemark struct {
	Points      []kmlCoords `xml:"Point"`
	LineStrings []kmlCoords `xml:"LineString"`
	Polygons    []struct {
		Outer kmlCoords   `xml:"outerBoundaryIs>LinearRing"`
		Inner []kmlCoords `xml:"innerBoundaryIs>LinearRing"`
	} `xml:"Polygon"`
	Multi *kmlPlacemark `xml:"MultiGeometry"`
}

// LoadKML reads a KML file.
func LoadKML(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return DecodeKML(f)
}

// DecodeKML collects Point, LineString and Polygon geometry from every
// Placemark, at any depth of Document and Folder nesting. KML coordinates
// are "lon,lat[,alt]"; altitude is ignored.
func DecodeKML(r io.Reader) (Data, error) {
	d := NewData()
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Data{}, fmt.Errorf("kml: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return Data{}, fmt.Errorf("kml: %w", err)
		}
		d.addPlacemark(pm)
	}
	if d.Empty() {
		return Data{}, errors.New("kml: no geometry found")
	}
	return d, nil
}

func (d *Data) addPlacemark(pm kmlPlacemark) {
	for _, p := range pm.Points {
		for _, pt := range kmlTuples(p.Coordinates) {
			d.addPoint(pt)
		}
	}
	for _, ls := range pm.LineStrings {
		d.addLine(kmlTuples(ls.Coordinates))
	}
	for _, pg := range pm.Polygons {
		poly := [][][2]float64{kmlTuples(pg.Outer.Coordinates)}
		for _, in := range pg.Inner {
			poly = append(poly, kmlTuples(in.Coordinates))
		}
		d.addPolygon(poly)
	}
	if pm.Multi != nil {
		d.addPlacemark(*pm.Multi)
	}
}

// kmlTuples parses whitespace separated "lon,lat[,alt]" tuples.
func kmlTuples(s string) [][2]float64 {
	var out [][2]float64
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, [2]float64{lon, lat})
	}
	return out
}
