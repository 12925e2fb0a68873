package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unit = Rect{XMin: 0, YMin: 0, XMax: 100, YMax: 100}

func TestClassifyPoint(t *testing.T) {
	tests := []struct {
		x, y float64
		want Outcode
		name string
	}{
		{50, 50, Inside, "inside"},
		{0, 100, Inside, "inside"},
		{-5, 50, Left, "left"},
		{105, 50, Right, "right"},
		{50, -1, Bottom, "bottom"},
		{50, 150, Top, "top"},
		{-5, 150, Left | Top, "left|top"},
		{101, -3, Right | Bottom, "right|bottom"},
	}
	for _, tc := range tests {
		got := ClassifyPoint(tc.x, tc.y, unit)
		assert.Equal(t, tc.want, got, "(%v, %v)", tc.x, tc.y)
		assert.Equal(t, tc.name, got.String())
	}
	assert.EqualValues(t, 9, ClassifyPoint(-5, 150, unit))
}

func TestClipSegment(t *testing.T) {
	tests := []struct {
		name   string
		vp     Rect
		p1, p2 Point
		ok     bool
		q1, q2 Point
	}{
		{"inside", unit, Pt(10, 10), Pt(90, 40), true, Pt(10, 10), Pt(90, 40)},
		{"left of window", unit, Pt(-50, 10), Pt(-1, 90), false, Point{}, Point{}},
		{"above window", unit, Pt(-50, 110), Pt(150, 101), false, Point{}, Point{}},
		{"enters from left", Rect{0, 0, 10, 10}, Pt(-5, 5), Pt(5, 5), true, Pt(0, 5), Pt(5, 5)},
		{"leaves right", unit, Pt(50, 50), Pt(150, 100), true, Pt(50, 50), Pt(100, 75)},
		{"through corners", Rect{0, 0, 10, 10}, Pt(-1, -1), Pt(11, 11), true, Pt(0, 0), Pt(10, 10)},
		{"reversed bounds", Rect{10, 10, 0, 0}, Pt(-5, 5), Pt(5, 5), true, Pt(0, 5), Pt(5, 5)},
		{"misses corner", Rect{0, 0, 10, 10}, Pt(-5, 8), Pt(8, 21), false, Point{}, Point{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q1, q2, ok := ClipSegment(tc.vp, tc.p1, tc.p2)
			require.Equal(t, tc.ok, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tc.q1.X, q1.X, 1e-9)
			assert.InDelta(t, tc.q1.Y, q1.Y, 1e-9)
			assert.InDelta(t, tc.q2.X, q2.X, 1e-9)
			assert.InDelta(t, tc.q2.Y, q2.Y, 1e-9)
		})
	}
}

func TestClipSegmentStaysOnLine(t *testing.T) {
	p1, p2 := Pt(-30, 20), Pt(70, 140)
	q1, q2, ok := ClipSegment(unit, p1, p2)
	require.True(t, ok)
	for _, q := range []Point{q1, q2} {
		cross := (p2.X-p1.X)*(q.Y-p1.Y) - (p2.Y-p1.Y)*(q.X-p1.X)
		assert.InDelta(t, 0, cross, 1e-6)
		assert.True(t, unit.Contains(q), "%v outside", q)
	}
	assert.InDelta(t, 0, q1.X, 1e-9)
	assert.InDelta(t, 100, q2.Y, 1e-9)
}

func TestClipLine(t *testing.T) {
	rec := NewRecorder()
	r := New(rec)

	assert.False(t, r.ClipLine(Rect{0, 0, 10, 10}, Pt(-5, -5), Pt(-1, 20)))
	assert.Empty(t, rec.Plots)

	require.True(t, r.ClipLine(Rect{0, 0, 10, 10}, Pt(-5, 5), Pt(5, 5)))
	px := coords(rec)
	assert.Equal(t, [2]int{0, 5}, px[0])
	assert.Equal(t, [2]int{5, 5}, px[len(px)-1])
	assert.Len(t, px, 6)
}

func TestRect(t *testing.T) {
	assert.True(t, unit.Valid())
	r := Rect{XMin: 5, YMin: 9, XMax: 1, YMax: 2}
	assert.False(t, r.Valid())
	assert.Equal(t, Rect{XMin: 1, YMin: 2, XMax: 5, YMax: 9}, r.Canon())
	assert.Len(t, unit.Corners(), 4)
}
