// Package tui is the terminal front end: the cannon game drawn on a braille
// canvas, and a gallery that draws loaded or pasted shapes with a chosen
// line algorithm.
package tui

import (
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"cannons/internal/config"
	"cannons/internal/game"
	"cannons/internal/geom"
	"cannons/internal/raster"
)

type mode int

const (
	modeGame mode = iota
	modeGallery
)

func (md mode) String() string {
	if md == modeGallery {
		return "gallery"
	}
	return "game"
}

// direction is one of the four movement keys.
type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// tickMsg drives the game clock.
type tickMsg time.Time

const sidebarWidth = 28

type Model struct {
	width  int
	height int

	cfg  config.Config
	mode mode

	showSidebar bool
	helpVisible bool

	status string

	// Game
	world  *game.World
	render *game.Renderer
	// held maps a direction to the time its last key press expires.
	held   map[direction]time.Time
	paused bool
	hitMsg string
	now    time.Time

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Gallery
	data    geom.Data
	algo    raster.LineAlgorithm
	clipOn  bool
	zoom    float64
	offsetX int
	offsetY int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// algorithm stats table
	showStats bool
	tbl       table.Model

	// last rendered canvas size, in cells
	canvasW int
	canvasH int
}

// New returns a model that starts a game at now.
func New(cfg config.Config, now time.Time) Model {
	m := Model{
		cfg:         cfg,
		helpVisible: true,
		status:      "cannons ready",
		world:       game.NewWorld(cfg.Game, now),
		render:      game.NewRenderer(cfg.Render),
		held:        map[direction]time.Time{},
		now:         now,
		data:        geom.NewData(),
		algo:        cfg.Render.Line,
		clipOn:      cfg.Render.ClipDemo,
		zoom:        1.0,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Shapes"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here, one geometry per line (POINT, LINESTRING, POLYGON, MULTI*). Enter draws; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true), table.WithColumns(statsColumns()))
	m.tbl.SetHeight(len(raster.LineAlgorithms()) + 1)
	m.refreshDir()
	return m
}

// NewWithPath preloads a shape file and opens the gallery.
func NewWithPath(cfg config.Config, now time.Time, path string) Model {
	m := New(cfg, now)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.Game.TickInterval(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

// input returns the directions still held at now.
func (m Model) input(now time.Time) game.Input {
	on := func(d direction) bool {
		until, ok := m.held[d]
		return ok && now.Before(until)
	}
	return game.Input{Up: on(dirUp), Down: on(dirDown), Left: on(dirLeft), Right: on(dirRight)}
}
