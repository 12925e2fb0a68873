package raster

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draw(alg LineAlgorithm, a, b Point) *Recorder {
	rec := NewRecorder()
	New(rec).Line(alg, a, b)
	return rec
}

func TestLineDegenerate(t *testing.T) {
	for _, alg := range LineAlgorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			for _, tc := range []struct {
				p    Point
				want [2]int
			}{
				{Pt(3, 4), [2]int{3, 4}},
				{Pt(5.4, 5.4), [2]int{5, 5}},
				{Pt(2.5, -1.6), [2]int{3, -2}},
			} {
				rec := draw(alg, tc.p, tc.p)
				require.Len(t, rec.Plots, 1, "%v", tc.p)
				assert.Equal(t, tc.want, coords(rec)[0], "%v", tc.p)
				assert.Equal(t, 1.0, rec.Plots[0].Color.A, "%v", tc.p)
			}
		})
	}
}

func TestLineShallowRun(t *testing.T) {
	want := [][2]int{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}
	for _, alg := range []LineAlgorithm{DDA, Bresenham, Midpoint} {
		rec := draw(alg, Pt(0, 0), Pt(4, 2))
		assert.Equal(t, want, coords(rec), alg.String())
	}
}

func TestLineDDAPointCount(t *testing.T) {
	tests := []struct {
		a, b Point
		want int
	}{
		{Pt(0, 0), Pt(7, -3), 8},
		{Pt(2, 2), Pt(2, 9), 8},
		{Pt(5, 5), Pt(-5, -5), 11},
		{Pt(0, 0), Pt(2.5, 0), 4},
	}
	for _, tc := range tests {
		rec := draw(DDA, tc.a, tc.b)
		assert.Len(t, rec.Plots, tc.want, "%v -> %v", tc.a, tc.b)
	}
}

func TestLineConnected(t *testing.T) {
	ends := [][2]Point{
		{Pt(0, 0), Pt(10, 3)},
		{Pt(0, 0), Pt(3, 10)},
		{Pt(10, 0), Pt(0, 7)},
		{Pt(-4, 6), Pt(5, -8)},
		{Pt(1, 1), Pt(1, -6)},
	}
	for _, alg := range []LineAlgorithm{DDA, Midpoint} {
		for _, e := range ends {
			px := coords(draw(alg, e[0], e[1]))
			assert.Equal(t, [2]int{round(e[0].X), round(e[0].Y)}, px[0])
			assert.Equal(t, [2]int{round(e[1].X), round(e[1].Y)}, px[len(px)-1])
			for i := 1; i < len(px); i++ {
				dx, dy := abs(px[i][0]-px[i-1][0]), abs(px[i][1]-px[i-1][1])
				assert.True(t, dx <= 1 && dy <= 1, "%s %v: gap between %v and %v", alg, e, px[i-1], px[i])
			}
		}
	}
}

func TestBresenhamMatchesMidpoint(t *testing.T) {
	for x0 := -3; x0 <= 3; x0 += 3 {
		for dx := -8; dx <= 8; dx++ {
			for dy := -abs(dx); dy <= abs(dx); dy++ {
				a := Pt(float64(x0), 1)
				b := Pt(float64(x0+dx), float64(1+dy))
				name := fmt.Sprintf("%v-%v", a, b)
				assert.ElementsMatch(t, coords(draw(Midpoint, a, b)), coords(draw(Bresenham, a, b)), name)
			}
		}
	}
}

func TestBresenhamSteepIsTruncated(t *testing.T) {
	rec := draw(Bresenham, Pt(0, 0), Pt(0, 5))
	assert.Len(t, rec.Plots, 1)
}

func TestMidpointSymmetric(t *testing.T) {
	for dx := -7; dx <= 7; dx++ {
		for dy := -7; dy <= 7; dy++ {
			a, b := Pt(2, -1), Pt(float64(2+dx), float64(-1+dy))
			fwd := coords(draw(Midpoint, a, b))
			rev := coords(draw(Midpoint, b, a))
			assert.ElementsMatch(t, fwd, rev, "%v %v", a, b)
			assert.Equal(t, [2]int{2, -1}, fwd[0])
			assert.Equal(t, [2]int{2 + dx, -1 + dy}, fwd[len(fwd)-1])
		}
	}
}

func TestLineDDASupersampled(t *testing.T) {
	rec := NewRecorder()
	rec.SetColor(RGB(0.2, 0.4, 0.6))
	New(rec).LineDDASupersampled(Pt(0, 0), Pt(4, 0))

	assert.Equal(t, RGB(0.2, 0.4, 0.6), rec.Color())
	require.Len(t, rec.Plots, 5)
	for i, p := range rec.Plots {
		assert.Equal(t, [2]int{i, 0}, [2]int{p.X, p.Y})
		assert.InDelta(t, 1.0, p.Color.A, 1e-12)
		assert.Equal(t, 0.4, p.Color.G)
	}

	rec.Reset()
	New(rec).LineDDASupersampled(Pt(0, 0), Pt(6, 3))
	partial := 0
	for _, p := range rec.Plots {
		assert.True(t, p.Color.A > 0 && p.Color.A <= 1)
		if p.Color.A < 1 {
			partial++
		}
	}
	assert.Positive(t, partial)
	px := rec.Pixels()
	assert.Contains(t, px, [2]int{0, 0})
	assert.Contains(t, px, [2]int{6, 3})
}

func TestLineMidpointAA(t *testing.T) {
	rec := NewRecorder()
	base := Color{R: 1, G: 0.5, B: 0, A: 1}
	rec.SetColor(base)
	New(rec).LineMidpointAA(Pt(0, 0), Pt(4, 0))

	assert.Equal(t, base, rec.Color())
	require.Len(t, rec.Plots, 15)
	for _, p := range rec.Plots {
		want := 1.0
		if p.Y != 0 {
			want = 1.0 / 3
		}
		assert.InDelta(t, want, p.Color.A, 1e-9, "pixel %d,%d", p.X, p.Y)
		assert.Equal(t, base.R, p.Color.R)
	}

	rec.Reset()
	New(rec).LineMidpointAA(Pt(0, 0), Pt(5, 5))
	px := rec.Pixels()
	assert.InDelta(t, 1.0, px[[2]int{2, 2}].A, 1e-9)
	assert.InDelta(t, 1-(1/1.414213562)/1.5, px[[2]int{2, 3}].A, 1e-6)
}

func TestLineAlgorithmNames(t *testing.T) {
	for _, alg := range LineAlgorithms() {
		got, err := ParseLineAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)

		text, err := alg.MarshalText()
		require.NoError(t, err)
		var back LineAlgorithm
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, alg, back)
	}

	got, err := ParseLineAlgorithm(" Midpoint-AA ")
	require.NoError(t, err)
	assert.Equal(t, MidpointAA, got)

	_, err = ParseLineAlgorithm("wu")
	assert.ErrorContains(t, err, `unknown line algorithm "wu"`)
	assert.Equal(t, "LineAlgorithm(9)", LineAlgorithm(9).String())
}
