package geom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".wkt", ".geojson", ".json", ".kml", ".csv"}

// Supported reports whether Load can read path, judging by its extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads a shape file, choosing the format by extension.
func Load(path string) (Data, error) {
	var (
		d   Data
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wkt":
		var b []byte
		b, err = os.ReadFile(path)
		if err == nil {
			d, err = ParseWKTText(string(b))
		}
	case ".geojson", ".json":
		d, err = LoadGeoJSON(path)
	case ".kml":
		d, err = LoadKML(path)
	case ".csv":
		d, err = LoadCSV(path)
	default:
		return Data{}, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
	if err != nil {
		return Data{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return d, nil
}
