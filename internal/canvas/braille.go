package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"cannons/internal/raster"
)

// MinDotWeight is the weight below which a braille dot stays off. Dots are
// binary, so anti-aliased fringes only show where they are strong.
const MinDotWeight = 0.5

// dotBits maps a dot position inside a cell (row, column) to its bit in the
// U+2800 braille pattern.
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Braille is a terminal canvas with 2×4 dots per character cell. A cell has
// a single foreground color: the last color plotted into it.
type Braille struct {
	w, h  int // in cells
	mask  [][]uint8
	fg    [][]raster.Color
	bg    raster.Color
	color raster.Color
}

var (
	_ raster.Surface     = (*Braille)(nil)
	_ raster.PixelReader = (*Braille)(nil)
)

// NewBraille returns a blank canvas of w×h cells, that is 2w×4h dots.
func NewBraille(w, h int) *Braille {
	w, h = max(w, 0), max(h, 0)
	b := &Braille{w: w, h: h, color: raster.RGB(1, 1, 1)}
	b.mask = make([][]uint8, h)
	b.fg = make([][]raster.Color, h)
	for i := range b.mask {
		b.mask[i] = make([]uint8, w)
		b.fg[i] = make([]raster.Color, w)
	}
	return b
}

// Size returns the canvas size in dots.
func (b *Braille) Size() (w, h int) { return 2 * b.w, 4 * b.h }

// Cells returns the canvas size in character cells.
func (b *Braille) Cells() (w, h int) { return b.w, b.h }

func (b *Braille) SetColor(c raster.Color) { b.color = c }
func (b *Braille) Color() raster.Color     { return b.color }

// PlotPixel turns on dot (x, y) unless the current weight is below
// MinDotWeight.
func (b *Braille) PlotPixel(x, y int) {
	if b.color.A < MinDotWeight {
		return
	}
	b.set(x, y)
}

func (b *Braille) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.mask[cy][cx] |= dotBits[my%4][mx%2]
	b.fg[cy][cx] = b.color
}

// PixelAt returns the cell color for a lit dot and the background for a
// dark one.
func (b *Braille) PixelAt(x, y int) (raster.Color, bool) {
	if x < 0 || y < 0 || x >= 2*b.w || y >= 4*b.h {
		return raster.Color{}, false
	}
	cx, cy := x/2, y/4
	if b.mask[cy][cx]&dotBits[y%4][x%2] == 0 {
		return b.bg, true
	}
	return b.fg[cy][cx], true
}

// Clear turns every dot off and sets the background. A background with
// zero weight leaves the terminal's own background visible.
func (b *Braille) Clear(c raster.Color) {
	for y := range b.mask {
		clear(b.mask[y])
		clear(b.fg[y])
	}
	b.bg = c
}

func (b *Braille) span(y, x0, x1 int) {
	for x := max(0, x0); x <= x1 && x < 2*b.w; x++ {
		b.set(x, y)
	}
}

func (b *Braille) FillRect(min, max raster.Point) {
	x0, x1 := rectSpan(min.X, max.X)
	y0, y1 := rectSpan(min.Y, max.Y)
	for y := y0; y <= y1; y++ {
		b.span(y, x0, x1)
	}
}

func (b *Braille) FillEllipse(c raster.Point, rx, ry float64) {
	scanEllipse(c, rx, ry, 4*b.h, b.span)
}

// FillPath fills pts with the even-odd rule.
func (b *Braille) FillPath(pts []raster.Point) {
	scanPath(pts, 4*b.h, b.span)
}

// Lines renders the canvas, one string per cell row. Runs of cells with the
// same color share one lipgloss style.
func (b *Braille) Lines() []string {
	out := make([]string, b.h)
	base := lipgloss.NewStyle()
	if b.bg.A > 0 {
		base = base.Background(lipgloss.Color(Hex(b.bg)))
	}
	var sb, run strings.Builder
	for y := 0; y < b.h; y++ {
		sb.Reset()
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := base
			if runColor != "" {
				st = st.Foreground(lipgloss.Color(runColor))
			}
			sb.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for x := 0; x < b.w; x++ {
			mask := b.mask[y][x]
			r, col := ' ', ""
			if mask != 0 {
				r, col = rune(0x2800+int(mask)), Hex(b.fg[y][x])
			}
			if col != runColor && col != "" {
				flush()
				runColor = col
			}
			run.WriteRune(r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

func (b *Braille) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Hex formats the RGB channels of c as #rrggbb.
func Hex(c raster.Color) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}
