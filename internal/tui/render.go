package tui

import (
	"math"

	"cannons/internal/canvas"
	"cannons/internal/game"
	"cannons/internal/geom"
	"cannons/internal/raster"
)

const (
	headerHeight = 1
	footerHeight = 2
)

// layout returns the canvas size in cells for the current window.
func (m Model) layout() (w, h int) {
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	w = contentWidth
	if m.showSidebar {
		w -= sidebarWidth + 1
	}
	return max(8, w), contentHeight
}

// dots returns the canvas size in braille dots, with a fallback before the
// first window size message.
func (m Model) dots() (w, h int) {
	if m.canvasW == 0 || m.canvasH == 0 {
		return 160, 96
	}
	return 2 * m.canvasW, 4 * m.canvasH
}

func (m Model) renderGame(w, h int) string {
	br := canvas.NewBraille(w, h)
	dw, dh := br.Size()
	tr := game.FitTransform(m.cfg.Game.Width, m.cfg.Game.Height, dw, dh)
	if err := m.render.Draw(br, m.world, tr); err != nil {
		raster.Logger().Debug("tui: frame", "err", err)
	}
	return br.String()
}

func (m Model) renderGallery(w, h int) string {
	br := canvas.NewBraille(w, h)
	dw, dh := br.Size()
	colors := m.cfg.Render.Colors
	br.Clear(colors.Sky.Color)
	if m.clipOn {
		br.SetColor(colors.Clip.Color)
		_ = raster.New(br).Polygon(clipWindow(dw, dh).Corners())
	}
	br.SetColor(colors.Outline.Color)
	m.drawGallery(br, dw, dh, m.algo)
	return br.String()
}

// projection fits the gallery shapes to a w×h canvas and applies zoom and
// pan. Pan offsets are in cells.
func (m Model) projection(w, h int) geom.Projection {
	p := geom.Fit(m.data.BBox, w, h, 2)
	c := raster.Pt(float64(w-1)/2, float64(h-1)/2)
	return p.Zoom(m.zoom, c).Pan(float64(2*m.offsetX), float64(4*m.offsetY))
}

// clipWindow is the middle half of a w×h canvas.
func clipWindow(w, h int) raster.Rect {
	fw, fh := float64(w-1), float64(h-1)
	return raster.Rect{XMin: math.Round(fw / 4), YMin: math.Round(fh / 4), XMax: math.Round(3 * fw / 4), YMax: math.Round(3 * fh / 4)}
}

// drawGallery strokes the gallery scene with alg on s, a w×h canvas, in the
// sink's current color. Without shapes it draws the curve showcase.
func (m Model) drawGallery(s raster.Sink, w, h int, alg raster.LineAlgorithm) {
	ras := raster.New(s)
	st := geom.Style{Line: alg, PointRadius: 1}
	if m.clipOn {
		vp := clipWindow(w, h)
		st.Clip = &vp
	}
	if m.data.Empty() {
		drawShowcase(ras, w, h, st)
		return
	}
	geom.Draw(ras, m.data, m.projection(w, h), st)
}

// drawShowcase draws a circle, an ellipse and a fan of lines side by side.
func drawShowcase(ras *raster.Rasterizer, w, h int, st geom.Style) {
	r := float64(min(w/3, h)) * 0.4
	cy := float64(h-1) / 2
	third := float64(w) / 3

	ras.Circle(raster.Pt(third/2, cy), r)
	ras.Ellipse(raster.Pt(third*1.5, cy), r*1.3, r*0.6)

	c := raster.Pt(third*2.5, cy)
	for i := range 16 {
		a := 2 * math.Pi * float64(i) / 16
		end := raster.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
		from := c
		if st.Clip != nil {
			var ok bool
			if from, end, ok = raster.ClipSegment(*st.Clip, from, end); !ok {
				continue
			}
		}
		ras.Line(st.Line, from, end)
	}
}
