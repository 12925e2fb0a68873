package game

import (
	"errors"
	"math"

	"cannons/internal/config"
	"cannons/internal/raster"
)

// hillSegments is the number of chords approximating a hill arc.
const hillSegments = 24

// Transform maps world coordinates to canvas pixels with a uniform scale.
type Transform struct {
	Scale      float64
	OffX, OffY float64
}

// FitTransform scales a worldW×worldH world into a w×h pixel canvas,
// centred, keeping the aspect ratio.
func FitTransform(worldW, worldH float64, w, h int) Transform {
	if w < 2 || h < 2 || worldW <= 0 || worldH <= 0 {
		return Transform{}
	}
	cw, ch := float64(w-1), float64(h-1)
	s := min(cw/worldW, ch/worldH)
	return Transform{
		Scale: s,
		OffX:  (cw - worldW*s) / 2,
		OffY:  (ch - worldH*s) / 2,
	}
}

func (t Transform) Apply(p raster.Point) raster.Point {
	return raster.Pt(t.OffX+p.X*t.Scale, t.OffY+p.Y*t.Scale)
}

func (t Transform) ApplyAll(pts []raster.Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p)
	}
	return out
}

// Len scales a world distance.
func (t Transform) Len(v float64) float64 { return v * t.Scale }

// Renderer draws a World frame onto a raster.Surface. Colors with zero
// weight are not drawn.
type Renderer struct {
	Line       raster.LineAlgorithm
	SightLines bool
	ClipDemo   bool
	Colors     config.Colors
}

func NewRenderer(cfg config.Render) *Renderer {
	return &Renderer{
		Line:       cfg.Line,
		SightLines: cfg.SightLines,
		ClipDemo:   cfg.ClipDemo,
		Colors:     cfg.Colors,
	}
}

// ClipWindow is the rectangle used by the clip demo: the middle half of
// the world on both axes.
func ClipWindow(g config.Game) raster.Rect {
	return raster.Rect{XMin: g.Width / 4, YMin: g.Height / 4, XMax: 3 * g.Width / 4, YMax: 3 * g.Height / 4}
}

// Draw renders w in the order sky, frame, hills, cannons, sight lines,
// balls, player.
func (rd *Renderer) Draw(s raster.Surface, w *World, t Transform) error {
	ras := raster.New(s)
	g := w.cfg
	s.Clear(rd.Colors.Sky.Color)

	var errs []error
	world := raster.Rect{XMax: g.Width, YMax: g.Height}
	if rd.paint(s, rd.Colors.Outline) {
		errs = append(errs, ras.Polygon(t.ApplyAll(world.Corners())))
	}

	for _, c := range w.Cannons {
		arc := t.ApplyAll(hillArc(c.Pos, g.HillRadius))
		if rd.paint(s, rd.Colors.Hill) {
			s.FillPath(arc)
		}
		if rd.paint(s, rd.Colors.Outline) {
			errs = append(errs, ras.Polyline(rd.Line, arc))
		}
	}

	for _, c := range w.Cannons {
		if !rd.paint(s, rd.Colors.Cannon) {
			break
		}
		bw, bh := 4*g.BarrelWidth, 2*g.BarrelWidth
		s.FillRect(t.Apply(raster.Pt(c.Pos.X-bw/2, c.Pos.Y-bh)), t.Apply(raster.Pt(c.Pos.X+bw/2, c.Pos.Y)))
		barrel := t.ApplyAll(barrelOutline(c, g.BarrelLength, g.BarrelWidth))
		s.FillPath(barrel)
		errs = append(errs, ras.Polygon(barrel))
	}

	if rd.SightLines && w.State == Playing && rd.paint(s, rd.Colors.Sight) {
		rd.drawSights(ras, w, t)
	}
	if rd.ClipDemo && rd.paint(s, rd.Colors.Clip) {
		errs = append(errs, ras.Polygon(t.ApplyAll(ClipWindow(g).Corners())))
	}

	if rd.paint(s, rd.Colors.Ball) {
		r := t.Len(g.BallRadius)
		for _, b := range w.Balls {
			p := t.Apply(b.Pos)
			s.FillEllipse(p, r, r)
			ras.Circle(p, r)
		}
	}

	p, r := t.Apply(w.Player), t.Len(g.PlayerRadius)
	if rd.paint(s, rd.Colors.Player) {
		s.FillEllipse(p, r, r)
	}
	if rd.paint(s, rd.Colors.Outline) {
		ras.Ellipse(p, r, r)
	}
	return errors.Join(errs...)
}

// drawSights draws the line of fire from each muzzle to the player, clipped
// to the world. In the clip demo the clip window is used instead and the
// rasterizer's own clipper draws the line.
func (rd *Renderer) drawSights(ras *raster.Rasterizer, w *World, t Transform) {
	g := w.cfg
	for _, c := range w.Cannons {
		a, b := c.Tip(g.BarrelLength), w.Player
		if rd.ClipDemo {
			win := ClipWindow(g)
			lo, hi := t.Apply(raster.Pt(win.XMin, win.YMin)), t.Apply(raster.Pt(win.XMax, win.YMax))
			ras.ClipLine(raster.Rect{XMin: lo.X, YMin: lo.Y, XMax: hi.X, YMax: hi.Y}, t.Apply(a), t.Apply(b))
			continue
		}
		a, b, ok := raster.ClipSegment(raster.Rect{XMax: g.Width, YMax: g.Height}, a, b)
		if !ok {
			continue
		}
		ras.Line(rd.Line, t.Apply(a), t.Apply(b))
	}
}

// paint sets the surface color and reports whether c is visible.
func (rd *Renderer) paint(s raster.Sink, c config.Color) bool {
	if c.A <= 0 {
		return false
	}
	s.SetColor(c.Color)
	return true
}

// hillArc is the lower half of the circle of radius r around c, from the
// right end of the flat top clockwise to the left end.
func hillArc(c raster.Point, r float64) []raster.Point {
	pts := make([]raster.Point, 0, hillSegments+1)
	for i := 0; i <= hillSegments; i++ {
		a := math.Pi * float64(i) / hillSegments
		pts = append(pts, raster.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a)))
	}
	return pts
}

// barrelOutline is the six-point barrel polygon: base, one side, muzzle,
// other side.
func barrelOutline(c Cannon, length, width float64) []raster.Point {
	sin, cos := math.Sincos(c.Angle)
	end := c.Tip(length)
	px, py := width*sin, -width*cos
	return []raster.Point{
		c.Pos,
		raster.Pt(c.Pos.X+px, c.Pos.Y+py),
		raster.Pt(end.X+px, end.Y+py),
		end,
		raster.Pt(end.X-px, end.Y-py),
		raster.Pt(c.Pos.X-px, c.Pos.Y-py),
	}
}
