package tui

import (
	"fmt"
	"strings"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"cannons/internal/game"
	"cannons/internal/geom"
	"cannons/internal/raster"
)

var opposite = map[direction]direction{
	dirUp: dirDown, dirDown: dirUp, dirLeft: dirRight, dirRight: dirLeft,
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.canvasW, m.canvasH = m.layout()
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.canvasH-2)
		}
		if m.showStats {
			m.refreshStats()
		}
	case tickMsg:
		m.now = time.Time(msg)
		if m.mode == modeGame && !m.paused && m.world.State == game.Playing {
			if m.world.Step(m.now, m.input(m.now)) {
				m.hitMsg = fmt.Sprintf("You were hit! Game over.\nSurvived %s.\n\nPlay again? (y/n)",
					m.world.Survived(m.now).Round(100*time.Millisecond))
				m.status = "hit"
				clear(m.held)
			}
		}
		return m, m.tick()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.hitMsg != "" {
			switch msg.String() {
			case "y", "Y", "enter":
				m.world.Reset(m.now)
				m.hitMsg = ""
				m.status = fmt.Sprintf("round %d", m.world.Stats.Rounds)
			case "n", "N", "q", "esc", "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "down", "left", "right", "w", "a", "s", "d":
			if m.mode == modeGame {
				m.press(key)
			} else {
				m.pan(key)
			}
		case "1", "2", "3", "4", "5":
			m.algo = raster.LineAlgorithms()[key[0]-'1']
			m.render.Line = m.algo
			m.status = "line: " + m.algo.String()
			if m.showStats {
				m.refreshStats()
			}
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "c":
			m.clipOn = !m.clipOn
			m.render.ClipDemo = m.clipOn
			m.status = fmt.Sprintf("clip window: %v", m.clipOn)
			if m.showStats {
				m.refreshStats()
			}
		case "v":
			m.render.SightLines = !m.render.SightLines
			m.status = fmt.Sprintf("sight lines: %v", m.render.SightLines)
		case "g":
			if m.mode == modeGame {
				m.mode = modeGallery
			} else {
				m.mode = modeGame
				clear(m.held)
			}
			m.status = m.mode.String()
		case " ":
			m.paused = !m.paused
			m.status = fmt.Sprintf("paused: %v", m.paused)
		case "r":
			m.world.Reset(m.now)
			m.status = fmt.Sprintf("round %d", m.world.Stats.Rounds)
		case "tab":
			m.showSidebar = !m.showSidebar
			m.canvasW, m.canvasH = m.layout()
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.canvasH-2)
			}
		case "p":
			m.pasteMode = true
			m.mode = modeGallery
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "t":
			m.showStats = !m.showStats
			if m.showStats {
				m.refreshStats()
			}
		case "esc":
			m.showStats = false
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := geom.ParseWKTText(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.setData(d)
		m.status = "rendered WKT  " + counts(d)
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	case "ctrl+j":
		m.ta.InsertString("\n")
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// press marks a movement key as held until the hold window runs out. The
// opposite direction is released at once.
func (m *Model) press(key string) {
	var d direction
	switch key {
	case "up", "w":
		d = dirUp
	case "down", "s":
		d = dirDown
	case "left", "a":
		d = dirLeft
	default:
		d = dirRight
	}
	hold := max(m.cfg.Game.KeyHold(), m.cfg.Game.TickInterval())
	m.held[d] = m.now.Add(hold)
	delete(m.held, opposite[d])
}

func (m *Model) pan(key string) {
	switch key {
	case "up", "w":
		m.offsetY--
	case "down", "s":
		m.offsetY++
	case "left", "a":
		m.offsetX -= 2
	case "right", "d":
		m.offsetX += 2
	}
}
