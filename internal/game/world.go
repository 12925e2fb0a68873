// Package game holds the cannon game: two cannons on hills track and fire at
// a player who dodges with the arrow keys. The world is simulated in fixed
// ticks; drawing is done by Renderer through the raster core.
package game

import (
	"math"
	"time"

	"cannons/internal/config"
	"cannons/internal/raster"
)

// State is the phase of a round.
type State int

const (
	Playing State = iota
	Over
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Over:
		return "over"
	}
	return "unknown"
}

// Cannon is a gun on a hill top. Angle is in radians, canvas orientation
// (y down), so an angle of -π/2 points straight up.
type Cannon struct {
	Pos      raster.Point
	Angle    float64
	LastFire time.Time
}

// Tip is the muzzle position.
func (c Cannon) Tip(length float64) raster.Point {
	return raster.Pt(c.Pos.X+length*math.Cos(c.Angle), c.Pos.Y+length*math.Sin(c.Angle))
}

// Ball is a cannonball in flight. Vel is per tick.
type Ball struct {
	Pos raster.Point
	Vel raster.Point
}

// Input is the set of directions held during a tick.
type Input struct {
	Up, Down, Left, Right bool
}

// Stats accumulates over every round of a World.
type Stats struct {
	Rounds int
	Shots  int
	Ticks  int
	Best   time.Duration
}

// World is the game state. It is driven by Step and is not safe for
// concurrent use.
type World struct {
	cfg config.Game

	Cannons []Cannon
	Balls   []Ball
	Player  raster.Point
	State   State
	Stats   Stats

	started time.Time
	ended   time.Time
}

// NewWorld returns a world ready to play at now. The cannons first fire one
// interval later.
func NewWorld(cfg config.Game, now time.Time) *World {
	w := &World{cfg: cfg}
	w.Reset(now)
	return w
}

// Config returns the settings the world was built with.
func (w *World) Config() config.Game { return w.cfg }

// Reset starts a new round at now. Balls are cleared, the player is put
// back in the centre and the cannons wait a full interval before firing.
func (w *World) Reset(now time.Time) {
	inset := w.cfg.CannonInset
	w.Cannons = []Cannon{
		{Pos: raster.Pt(inset, w.cfg.Height-inset), Angle: -math.Pi / 4, LastFire: now},
		{Pos: raster.Pt(w.cfg.Width-inset, w.cfg.Height-inset), Angle: -3 * math.Pi / 4, LastFire: now},
	}
	w.Balls = w.Balls[:0]
	w.Player = raster.Pt(w.cfg.Width/2, w.cfg.Height/2)
	w.State = Playing
	w.started = now
	w.ended = time.Time{}
	w.Stats.Rounds++
}

// Step advances the world by one tick. It does nothing once the round is
// over. It reports whether the player was hit during this tick.
func (w *World) Step(now time.Time, in Input) bool {
	if w.State == Over {
		return false
	}
	w.Stats.Ticks++

	for i := range w.Cannons {
		c := &w.Cannons[i]
		c.Angle = math.Atan2(w.Player.Y-c.Pos.Y, w.Player.X-c.Pos.X)
		if now.Sub(c.LastFire) >= w.cfg.FireInterval() {
			c.LastFire = now
			w.fire(*c)
		}
	}

	kept := w.Balls[:0]
	for _, b := range w.Balls {
		b.Pos.X += b.Vel.X
		b.Pos.Y += b.Vel.Y
		if b.Pos.X < 0 || b.Pos.X > w.cfg.Width || b.Pos.Y < 0 || b.Pos.Y > w.cfg.Height {
			continue
		}
		kept = append(kept, b)
	}
	w.Balls = kept

	w.move(in)

	if w.hit() {
		w.State = Over
		w.ended = now
		w.Stats.Best = max(w.Stats.Best, w.Survived(now))
		return true
	}
	return false
}

func (w *World) fire(c Cannon) {
	w.Balls = append(w.Balls, Ball{
		Pos: c.Tip(w.cfg.BarrelLength),
		Vel: raster.Pt(w.cfg.BallSpeed*math.Cos(c.Angle), w.cfg.BallSpeed*math.Sin(c.Angle)),
	})
	w.Stats.Shots++
}

func (w *World) move(in Input) {
	speed, r := w.cfg.PlayerSpeed, w.cfg.PlayerRadius
	p := &w.Player
	if in.Up {
		p.Y = max(p.Y-speed, r)
	}
	if in.Down {
		p.Y = min(p.Y+speed, w.cfg.Height-r)
	}
	if in.Left {
		p.X = max(p.X-speed, r)
	}
	if in.Right {
		p.X = min(p.X+speed, w.cfg.Width-r)
	}
}

func (w *World) hit() bool {
	reach := w.cfg.PlayerRadius + w.cfg.BallRadius
	for _, b := range w.Balls {
		if math.Hypot(b.Pos.X-w.Player.X, b.Pos.Y-w.Player.Y) <= reach {
			return true
		}
	}
	return false
}

// Survived is the length of the current round. It stops counting when the
// player is hit.
func (w *World) Survived(now time.Time) time.Duration {
	if w.State == Over {
		return w.ended.Sub(w.started)
	}
	return now.Sub(w.started)
}
