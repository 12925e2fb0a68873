package canvas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cannons/internal/raster"
)

func TestBrailleDots(t *testing.T) {
	b := NewBraille(2, 1)
	w, h := b.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)

	b.PlotPixel(0, 0)
	b.PlotPixel(1, 3)
	b.PlotPixel(9, 9) // ignored
	b.PlotPixel(-1, 0)

	lines := b.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, string(rune(0x2800+0x01+0x80))+" ", lines[0])
}

func TestBrailleWeightThreshold(t *testing.T) {
	b := NewBraille(1, 1)
	b.SetColor(raster.Color{R: 1, A: 0.3})
	b.PlotPixel(0, 0)
	c, ok := b.PixelAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, raster.Color{}, c)

	b.SetColor(raster.Color{R: 1, A: 0.6})
	b.PlotPixel(0, 0)
	c, _ = b.PixelAt(0, 0)
	assert.Equal(t, raster.Color{R: 1, A: 0.6}, c)
}

func TestBraillePixelAt(t *testing.T) {
	b := NewBraille(3, 2)
	sky := raster.RGB(0.5, 0.7, 1)
	b.Clear(sky)

	c, ok := b.PixelAt(5, 7)
	require.True(t, ok)
	assert.Equal(t, sky, c)

	_, ok = b.PixelAt(6, 0)
	assert.False(t, ok)
	_, ok = b.PixelAt(0, 8)
	assert.False(t, ok)
}

func TestBrailleFills(t *testing.T) {
	b := NewBraille(10, 5)
	b.SetColor(raster.RGB(0, 1, 0))

	b.FillRect(raster.Pt(2, 2), raster.Pt(5, 4))
	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if c, _ := b.PixelAt(x, y); c.A > 0 {
				lit++
			}
		}
	}
	assert.Equal(t, 12, lit)

	b.Clear(raster.Color{})
	b.FillEllipse(raster.Pt(10, 10), 3, 3)
	for _, p := range [][2]int{{10, 10}, {13, 10}, {7, 10}, {10, 7}, {10, 13}} {
		c, _ := b.PixelAt(p[0], p[1])
		assert.Positive(t, c.A, "%v", p)
	}
	c, _ := b.PixelAt(13, 13)
	assert.Zero(t, c.A)

	b.Clear(raster.Color{})
	b.FillPath([]raster.Point{{0, 0}, {8, 0}, {8, 8}, {0, 8}})
	c, _ = b.PixelAt(4, 4)
	assert.Positive(t, c.A)
	c, _ = b.PixelAt(9, 4)
	assert.Zero(t, c.A)
}

func TestBrailleEvenOdd(t *testing.T) {
	b := NewBraille(10, 5)
	// Outer square with an inner square traced as a second loop.
	b.FillPath([]raster.Point{
		{0, 0}, {16, 0}, {16, 16}, {0, 16}, {0, 0},
		{4, 4}, {4, 12}, {12, 12}, {12, 4}, {4, 4},
	})
	c, _ := b.PixelAt(2, 8)
	assert.Positive(t, c.A)
	c, _ = b.PixelAt(8, 8)
	assert.Zero(t, c.A, "hole stays empty")
}

func TestBrailleBoundaryFill(t *testing.T) {
	b := NewBraille(8, 4)
	r := raster.New(b)
	red, blue := raster.RGB(1, 0, 0), raster.RGB(0, 0, 1)
	b.SetColor(red)
	r.Circle(raster.Pt(8, 8), 5)

	require.NoError(t, r.BoundaryFill(raster.Pt(8, 8), blue, red, raster.Four))
	c, _ := b.PixelAt(8, 8)
	assert.Equal(t, blue, c)
	c, _ = b.PixelAt(15, 15)
	assert.Zero(t, c.A, "fill stays inside the circle")
	assert.Equal(t, red, b.Color())
}

func TestBrailleString(t *testing.T) {
	b := NewBraille(3, 2)
	raster.New(b).LineDDA(raster.Pt(0, 0), raster.Pt(5, 7))
	s := b.String()
	assert.Equal(t, 1, strings.Count(s, "\n"))
	assert.NotContains(t, s, string(rune(0x2800)))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff8000", Hex(raster.RGB(1, 0.5, 0)))
	assert.Equal(t, "#000000", Hex(raster.Color{R: -1}))
}
