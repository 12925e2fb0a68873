package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"cannons/internal/raster"
)

// kappa is the control point distance for a cubic quarter circle.
const kappa = 0.5522847498

// Image is a sink backed by an *image.RGBA. Weighted pixels are composited
// source-over; fills are anti-aliased by x/image/vector.
type Image struct {
	img   *image.RGBA
	ras   *vector.Rasterizer
	color raster.Color
}

var (
	_ raster.Surface     = (*Image)(nil)
	_ raster.PixelReader = (*Image)(nil)
)

// NewImage returns a transparent w×h image.
func NewImage(w, h int) *Image {
	w, h = max(w, 0), max(h, 0)
	return &Image{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		ras:   vector.NewRasterizer(w, h),
		color: raster.RGB(0, 0, 0),
	}
}

// RGBA returns the backing image.
func (m *Image) RGBA() *image.RGBA { return m.img }

// Size returns the image size in pixels.
func (m *Image) Size() (w, h int) { return m.img.Rect.Dx(), m.img.Rect.Dy() }

func (m *Image) SetColor(c raster.Color) { m.color = c }
func (m *Image) Color() raster.Color     { return m.color }

func (m *Image) PlotPixel(x, y int) {
	if !(image.Point{X: x, Y: y}).In(m.img.Rect) || m.color.A <= 0 {
		return
	}
	a := clamp01(m.color.A)
	src := colorful.Color{R: m.color.R, G: m.color.G, B: m.color.B}.Clamped()
	px := m.img.RGBAAt(x, y)
	dst, ok := colorful.MakeColor(px)
	da := float64(px.A) / 255
	if !ok {
		dst, da = src, 0
	}
	out := dst.BlendRgb(src, a)
	m.img.Set(x, y, nrgba(raster.Color{R: out.R, G: out.G, B: out.B, A: a + da*(1-a)}))
}

// PixelAt returns the straight-alpha color at (x, y).
func (m *Image) PixelAt(x, y int) (raster.Color, bool) {
	if !(image.Point{X: x, Y: y}).In(m.img.Rect) {
		return raster.Color{}, false
	}
	px := m.img.RGBAAt(x, y)
	c, ok := colorful.MakeColor(px)
	if !ok {
		return raster.Color{}, true
	}
	return raster.Color{R: c.R, G: c.G, B: c.B, A: float64(px.A) / 255}, true
}

func (m *Image) Clear(c raster.Color) {
	draw.Draw(m.img, m.img.Rect, image.NewUniform(nrgba(c)), image.Point{}, draw.Src)
}

func (m *Image) FillRect(min, max raster.Point) {
	x0, x1 := rectSpan(min.X, max.X)
	y0, y1 := rectSpan(min.Y, max.Y)
	r := image.Rect(x0, y0, x1+1, y1+1)
	draw.Draw(m.img, r, image.NewUniform(nrgba(m.color)), image.Point{}, draw.Over)
}

// FillEllipse approximates the ellipse with four cubic arcs.
func (m *Image) FillEllipse(c raster.Point, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	m.begin()
	cx, cy := float32(c.X+0.5), float32(c.Y+0.5)
	ax, ay := float32(rx), float32(ry)
	kx, ky := float32(kappa*rx), float32(kappa*ry)
	m.ras.MoveTo(cx+ax, cy)
	m.ras.CubeTo(cx+ax, cy+ky, cx+kx, cy+ay, cx, cy+ay)
	m.ras.CubeTo(cx-kx, cy+ay, cx-ax, cy+ky, cx-ax, cy)
	m.ras.CubeTo(cx-ax, cy-ky, cx-kx, cy-ay, cx, cy-ay)
	m.ras.CubeTo(cx+kx, cy-ay, cx+ax, cy-ky, cx+ax, cy)
	m.ras.ClosePath()
	m.flush()
}

// FillPath fills the closed polygon pts. Coverage is accumulated by
// x/image/vector, which agrees with the even-odd rule for simple polygons.
func (m *Image) FillPath(pts []raster.Point) {
	if len(pts) < 3 {
		return
	}
	m.begin()
	m.ras.MoveTo(float32(pts[0].X+0.5), float32(pts[0].Y+0.5))
	for _, p := range pts[1:] {
		m.ras.LineTo(float32(p.X+0.5), float32(p.Y+0.5))
	}
	m.ras.ClosePath()
	m.flush()
}

func (m *Image) begin() {
	w, h := m.Size()
	m.ras.Reset(w, h)
	m.ras.DrawOp = draw.Over
}

func (m *Image) flush() {
	m.ras.Draw(m.img, m.img.Rect, image.NewUniform(nrgba(m.color)), image.Point{})
}

// Scaled returns the image enlarged n times with nearest neighbour
// sampling. For n <= 1 it returns the backing image itself.
func (m *Image) Scaled(n int) *image.RGBA {
	if n <= 1 {
		return m.img
	}
	w, h := m.Size()
	dst := image.NewRGBA(image.Rect(0, 0, w*n, h*n))
	draw.NearestNeighbor.Scale(dst, dst.Rect, m.img, m.img.Rect, draw.Src, nil)
	return dst
}

// Encode writes the image, enlarged scale times, as PNG.
func (m *Image) Encode(w io.Writer, scale int) error {
	return png.Encode(w, m.Scaled(scale))
}

// SavePNG writes the image, enlarged scale times, to path.
func (m *Image) SavePNG(path string, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	if err := m.Encode(f, scale); err != nil {
		f.Close()
		return fmt.Errorf("save png: %w", err)
	}
	return f.Close()
}

func nrgba(c raster.Color) color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
