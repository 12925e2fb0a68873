package raster

// Plot is one pixel write.
type Plot struct {
	X, Y  int
	Color Color
}

// Recorder is a Sink that keeps every write in emission order. It has no
// bounds and ignores nothing.
type Recorder struct {
	color Color
	Plots []Plot
}

// NewRecorder returns an empty recorder whose current color is opaque
// black.
func NewRecorder() *Recorder {
	return &Recorder{color: RGB(0, 0, 0)}
}

func (rec *Recorder) SetColor(c Color) { rec.color = c }
func (rec *Recorder) Color() Color     { return rec.color }

func (rec *Recorder) PlotPixel(x, y int) {
	rec.Plots = append(rec.Plots, Plot{X: x, Y: y, Color: rec.color})
}

// Reset drops the recorded plots and keeps the current color.
func (rec *Recorder) Reset() { rec.Plots = rec.Plots[:0] }

// Pixels returns the final color of every written pixel; later writes to
// the same coordinate win.
func (rec *Recorder) Pixels() map[[2]int]Color {
	m := make(map[[2]int]Color, len(rec.Plots))
	for _, p := range rec.Plots {
		m[[2]int{p.X, p.Y}] = p.Color
	}
	return m
}

// Replay writes the recorded plots to s in order and restores the color s
// had before.
func (rec *Recorder) Replay(s Sink) {
	prev := s.Color()
	defer s.SetColor(prev)
	for _, p := range rec.Plots {
		s.SetColor(p.Color)
		s.PlotPixel(p.X, p.Y)
	}
}
