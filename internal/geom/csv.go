package geom

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a CSV file of coordinates.
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	return DecodeCSV(f)
}

// DecodeCSV reads coordinates from CSV with a header row.
// Column detection: x|lon|lng|long|longitude and y|lat|latitude
// (case-insensitive). An optional path|shape column groups rows: rows with
// the same non-empty value form one line string in file order, the other
// rows are points.
func DecodeCSV(r io.Reader) (Data, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return Data{}, err
	}
	if len(recs) == 0 {
		return Data{}, errors.New("empty csv")
	}
	idxX, idxY, idxPath := -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "lon", "lng", "long", "longitude":
			if idxX == -1 {
				idxX = i
			}
		case "y", "lat", "latitude":
			if idxY == -1 {
				idxY = i
			}
		case "path", "shape":
			if idxPath == -1 {
				idxPath = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return Data{}, errors.New("csv: x/y columns not found")
	}

	d := NewData()
	var order []string
	paths := map[string][][2]float64{}
	for _, row := range recs[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		id := ""
		if idxPath >= 0 && idxPath < len(row) {
			id = strings.TrimSpace(row[idxPath])
		}
		if id == "" {
			d.addPoint([2]float64{x, y})
			continue
		}
		if _, ok := paths[id]; !ok {
			order = append(order, id)
		}
		paths[id] = append(paths[id], [2]float64{x, y})
	}
	for _, id := range order {
		if ls := paths[id]; len(ls) == 1 {
			d.addPoint(ls[0])
		} else {
			d.addLine(ls)
		}
	}
	if d.Empty() {
		return Data{}, errors.New("csv: no valid points parsed")
	}
	return d, nil
}
