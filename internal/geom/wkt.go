package geom

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseWKT parses a single WKT geometry.
// Supported: POINT(x y), MULTIPOINT(x y, ...) or MULTIPOINT((x y), ...),
// LINESTRING(x y, ...), MULTILINESTRING((x y, ...), ...),
// POLYGON((x y, ...), (hole ...)).
func ParseWKT(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	kind := strings.ToUpper(strings.Fields(s)[0])
	if i >= 0 {
		kind = strings.ToUpper(strings.TrimSpace(s[:i]))
	}
	invalid := fmt.Errorf("wkt %s: invalid", strings.ToLower(kind))

	d := NewData()
	switch kind {
	case "POINT", "MULTIPOINT", "LINESTRING", "MULTILINESTRING", "POLYGON":
		if i < 0 || j <= i {
			return Data{}, invalid
		}
	default:
		return Data{}, fmt.Errorf("unsupported wkt type %q", kind)
	}
	body := s[i+1 : j]

	switch kind {
	case "POINT", "MULTIPOINT":
		pts, err := parseTuples(strings.NewReplacer("(", "", ")", "").Replace(body))
		if err != nil || len(pts) == 0 {
			return Data{}, invalid
		}
		for _, p := range pts {
			d.addPoint(p)
		}
	case "LINESTRING":
		ls, err := parseTuples(body)
		if err != nil || len(ls) < 2 {
			return Data{}, invalid
		}
		d.addLine(ls)
	case "MULTILINESTRING":
		parts, err := splitGroups(body)
		if err != nil {
			return Data{}, invalid
		}
		for _, part := range parts {
			ls, err := parseTuples(part)
			if err != nil || len(ls) < 2 {
				return Data{}, invalid
			}
			d.addLine(ls)
		}
	case "POLYGON":
		parts, err := splitGroups(body)
		if err != nil {
			return Data{}, invalid
		}
		var poly [][][2]float64
		for _, part := range parts {
			ring, err := parseTuples(part)
			if err != nil || len(ring) < 3 {
				return Data{}, invalid
			}
			poly = append(poly, ring)
		}
		d.addPolygon(poly)
	}
	return d, nil
}

// ParseWKTText parses one WKT geometry per line. Blank lines and lines
// starting with # are skipped. The error names the first bad line.
func ParseWKTText(text string) (Data, error) {
	d := NewData()
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		g, err := ParseWKT(s)
		if err != nil {
			return Data{}, fmt.Errorf("line %d: %w", line, err)
		}
		d.Merge(g)
	}
	if err := sc.Err(); err != nil {
		return Data{}, err
	}
	if d.Empty() {
		return Data{}, errors.New("empty wkt")
	}
	return d, nil
}

// parseTuples parses "x y, x y, ...". Extra ordinates (z, m) are ignored.
func parseTuples(block string) ([][2]float64, error) {
	var out [][2]float64
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(tup)
		if len(parts) == 0 {
			continue
		}
		if len(parts) < 2 {
			return nil, fmt.Errorf("bad coordinate %q", strings.TrimSpace(tup))
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err := errors.Join(err1, err2); err != nil {
			return nil, err
		}
		out = append(out, [2]float64{x, y})
	}
	return out, nil
}

// splitGroups splits "(a), (b), ..." into the parenthesised bodies.
func splitGroups(body string) ([]string, error) {
	var groups []string
	depth, start := 0, -1
	for k, ch := range body {
		switch ch {
		case '(':
			if depth == 0 {
				start = k + 1
			}
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, errors.New("unbalanced parentheses")
			}
			if depth == 0 {
				groups = append(groups, body[start:k])
			}
		}
	}
	if depth != 0 || len(groups) == 0 {
		return nil, errors.New("unbalanced parentheses")
	}
	return groups, nil
}
