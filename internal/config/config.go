// Package config holds the game and rendering settings and reads them from
// TOML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"

	"cannons/internal/raster"
)

// Config is the full program configuration.
type Config struct {
	Game   Game   `toml:"game"`
	Render Render `toml:"render"`
}

// Game holds the world geometry and kinematics. Distances are in world
// units, speeds in world units per tick.
type Game struct {
	Width          float64 `toml:"width"`
	Height         float64 `toml:"height"`
	TickRate       int     `toml:"tick_rate"` // ticks per second
	FireIntervalMS int     `toml:"fire_interval_ms"`
	BallSpeed      float64 `toml:"ball_speed"`
	PlayerSpeed    float64 `toml:"player_speed"`
	PlayerRadius   float64 `toml:"player_radius"`
	BallRadius     float64 `toml:"ball_radius"`
	BarrelLength   float64 `toml:"barrel_length"`
	BarrelWidth    float64 `toml:"barrel_width"`
	HillRadius     float64 `toml:"hill_radius"`
	CannonInset    float64 `toml:"cannon_inset"`
	// KeyHoldMS is how long a key press counts as held. Terminals report
	// presses and repeats but no releases.
	KeyHoldMS int `toml:"key_hold_ms"`
}

// Render selects how frames are drawn.
type Render struct {
	Line       raster.LineAlgorithm `toml:"line"`
	SightLines bool                 `toml:"sight_lines"`
	ClipDemo   bool                 `toml:"clip_demo"`
	Colors     Colors               `toml:"colors"`
}

// Colors are given as "#rrggbb", "#rgb", an SVG color name, or "none".
type Colors struct {
	Sky     Color `toml:"sky"`
	Hill    Color `toml:"hill"`
	Cannon  Color `toml:"cannon"`
	Ball    Color `toml:"ball"`
	Player  Color `toml:"player"`
	Outline Color `toml:"outline"`
	Sight   Color `toml:"sight"`
	Clip    Color `toml:"clip"`
}

// Color is a raster.Color that reads and writes as text.
type Color struct {
	raster.Color
}

// ParseColor parses a hex color, an SVG color name or "none" (transparent).
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "none" || s == "":
		return Color{}, nil
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		return Color{raster.RGB(c.R, c.G, c.B)}, nil
	}
	rgba, ok := colornames.Map[s]
	if !ok {
		return Color{}, fmt.Errorf("color %q: unknown name", s)
	}
	c, _ := colorful.MakeColor(rgba)
	return Color{raster.RGB(c.R, c.G, c.B)}, nil
}

// MustColor is ParseColor for literals known to be valid.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	if c.A == 0 {
		return []byte("none"), nil
	}
	return []byte(colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: Game{
			Width:          800,
			Height:         600,
			TickRate:       30,
			FireIntervalMS: 1000,
			BallSpeed:      10,
			PlayerSpeed:    5,
			PlayerRadius:   20,
			BallRadius:     5,
			BarrelLength:   30,
			BarrelWidth:    5,
			HillRadius:     100,
			CannonInset:    100,
			KeyHoldMS:      120,
		},
		Render: Render{
			Line:       raster.Midpoint,
			SightLines: true,
			ClipDemo:   false,
			Colors: Colors{
				Sky:     MustColor("none"),
				Hill:    MustColor("forestgreen"),
				Cannon:  MustColor("#555555"),
				Ball:    MustColor("#e8e8e8"),
				Player:  MustColor("royalblue"),
				Outline: MustColor("white"),
				Sight:   MustColor("#ff5555"),
				Clip:    MustColor("gold"),
			},
		},
	}
}

// Load reads path over the defaults. Unknown keys are an error. An empty
// path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return Config{}, fmt.Errorf("config: %s", strings.TrimSpace(sme.String()))
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes cfg as TOML.
func (cfg Config) Marshal() ([]byte, error) {
	return toml.Marshal(cfg)
}

// Validate reports every out-of-range setting.
func (cfg Config) Validate() error {
	g := cfg.Game
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("game.%s must be positive, got %v", name, v))
		}
	}
	positive("width", g.Width)
	positive("height", g.Height)
	positive("ball_speed", g.BallSpeed)
	positive("player_speed", g.PlayerSpeed)
	positive("player_radius", g.PlayerRadius)
	positive("ball_radius", g.BallRadius)
	positive("barrel_length", g.BarrelLength)
	positive("barrel_width", g.BarrelWidth)
	if g.TickRate < 1 || g.TickRate > 240 {
		errs = append(errs, fmt.Errorf("game.tick_rate must be in [1, 240], got %d", g.TickRate))
	}
	if g.FireIntervalMS < 1 {
		errs = append(errs, fmt.Errorf("game.fire_interval_ms must be positive, got %d", g.FireIntervalMS))
	}
	if g.KeyHoldMS < 0 {
		errs = append(errs, fmt.Errorf("game.key_hold_ms must not be negative, got %d", g.KeyHoldMS))
	}
	if g.HillRadius < 0 {
		errs = append(errs, fmt.Errorf("game.hill_radius must not be negative, got %v", g.HillRadius))
	}
	if g.CannonInset < 0 || 2*g.CannonInset > g.Width || g.CannonInset > g.Height {
		errs = append(errs, fmt.Errorf("game.cannon_inset %v does not fit a %vx%v world", g.CannonInset, g.Width, g.Height))
	}
	if 2*g.PlayerRadius >= min(g.Width, g.Height) {
		errs = append(errs, fmt.Errorf("game.player_radius %v does not fit a %vx%v world", g.PlayerRadius, g.Width, g.Height))
	}
	if _, err := cfg.Render.Line.MarshalText(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// FireInterval is the time between two shots of one cannon.
func (g Game) FireInterval() time.Duration {
	return time.Duration(g.FireIntervalMS) * time.Millisecond
}

// TickInterval is the duration of one simulation tick.
func (g Game) TickInterval() time.Duration {
	return time.Second / time.Duration(max(g.TickRate, 1))
}

// KeyHold is how long a key press keeps its direction active.
func (g Game) KeyHold() time.Duration {
	return time.Duration(g.KeyHoldMS) * time.Millisecond
}
