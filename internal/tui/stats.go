package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"cannons/internal/raster"
)

// algoStats is what one line algorithm emitted for the gallery scene.
type algoStats struct {
	Algo     raster.LineAlgorithm
	Plots    int // pixel writes, repeats included
	Pixels   int // distinct pixels
	Weighted int // writes with partial weight
}

func statsColumns() []table.Column {
	return []table.Column{
		{Title: "algorithm", Width: 12},
		{Title: "plots", Width: 8},
		{Title: "pixels", Width: 8},
		{Title: "weighted", Width: 9},
	}
}

// collectStats draws the gallery scene once per algorithm on a Recorder.
func (m Model) collectStats() []algoStats {
	w, h := m.dots()
	rec := raster.NewRecorder()
	var out []algoStats
	for _, alg := range raster.LineAlgorithms() {
		rec.Reset()
		m.drawGallery(rec, w, h, alg)
		s := algoStats{Algo: alg, Plots: len(rec.Plots), Pixels: len(rec.Pixels())}
		for _, p := range rec.Plots {
			if p.Color.A < 1 {
				s.Weighted++
			}
		}
		out = append(out, s)
	}
	return out
}

// refreshStats rebuilds the table rows for the current scene.
func (m *Model) refreshStats() {
	stats := m.collectStats()
	rows := make([]table.Row, 0, len(stats))
	for _, s := range stats {
		name := s.Algo.String()
		if s.Algo == m.algo {
			name = "> " + name
		}
		rows = append(rows, table.Row{
			name,
			strconv.Itoa(s.Plots),
			strconv.Itoa(s.Pixels),
			strconv.Itoa(s.Weighted),
		})
	}
	m.tbl.SetRows(rows)
}
