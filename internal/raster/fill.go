package raster

import "math"

// Connectivity selects which neighbours BoundaryFill spreads to.
type Connectivity int

const (
	Four  Connectivity = 4
	Eight Connectivity = 8
)

var (
	neighbours4 = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	neighbours8 = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// colorTolerance absorbs the quantisation of sinks that store 8-bit
// channels.
const colorTolerance = 1.0 / 255

func sameColor(a, b Color) bool {
	return math.Abs(a.R-b.R) <= colorTolerance &&
		math.Abs(a.G-b.G) <= colorTolerance &&
		math.Abs(a.B-b.B) <= colorTolerance &&
		math.Abs(a.A-b.A) <= colorTolerance
}

// BoundaryFill paints fill outwards from seed until it meets pixels of the
// boundary color, pixels already holding fill, or the edge of the canvas.
// The sink must implement PixelReader. The sink color is restored on
// return.
func (r *Rasterizer) BoundaryFill(seed Point, fill, boundary Color, conn Connectivity) error {
	pr, ok := r.sink.(PixelReader)
	if !ok {
		return ErrUnreadableSink
	}
	defer r.withColor(fill)()

	offsets := neighbours4
	if conn == Eight {
		offsets = neighbours8
	}

	type pixel struct{ x, y int }
	start := pixel{round(seed.X), round(seed.Y)}
	seen := map[pixel]bool{start: true}
	stack := []pixel{start}
	painted := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c, in := pr.PixelAt(p.x, p.y)
		if !in || sameColor(c, boundary) || sameColor(c, fill) {
			continue
		}
		r.sink.PlotPixel(p.x, p.y)
		painted++
		for _, o := range offsets {
			q := pixel{p.x + o[0], p.y + o[1]}
			if !seen[q] {
				seen[q] = true
				stack = append(stack, q)
			}
		}
	}
	Logger().Debug("boundary fill", "pixels", painted, "connectivity", int(conn))
	return nil
}
