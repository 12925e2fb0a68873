package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	contentWidth := max(10, m.width)
	mapWidth, mapHeight := m.layout()

	// Header
	header := titleStyle.Render(" cannons ─ " + m.mode.String() + " ")
	header = lipgloss.JoinHorizontal(lipgloss.Bottom, header, dimStyle.Render("  "+m.scoreLine()))
	header = lipgloss.NewStyle().Width(contentWidth).MaxHeight(headerHeight).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showStats:
		statsBox := boxStyle.Render(titleStyle.Render("pixels per line algorithm") + "\n" + m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, statsBox)
	case m.pasteMode:
		m.ta.SetWidth(mapWidth)
		m.ta.SetHeight(min(mapHeight, 12))
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	default:
		var frame string
		if m.mode == modeGame {
			frame = m.renderGame(mapWidth, mapHeight)
		} else {
			frame = m.renderGallery(mapWidth, mapHeight)
		}
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(frame)
		if m.hitMsg != "" {
			box := popupStyle.Render(alertStyle.Render(m.hitMsg))
			mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
		}
	}

	// Body row
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// scoreLine summarises the round in the header.
func (m Model) scoreLine() string {
	if m.mode == modeGallery {
		return fmt.Sprintf("line=%s clip=%v zoom=%.2fx  %s", m.algo, m.clipOn, m.zoom, counts(m.data))
	}
	st := m.world.Stats
	return fmt.Sprintf("round %d  survived %s  best %s  balls %d  line=%s",
		st.Rounds,
		m.world.Survived(m.now).Round(100*time.Millisecond),
		st.Best.Round(100*time.Millisecond),
		len(m.world.Balls),
		m.algo)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	var keys []string
	if m.mode == modeGame {
		keys = []string{"↑↓←→/wasd move", "space pause", "r restart", "v sights"}
	} else {
		keys = []string{"↑↓←→ pan", "+/- zoom", "0 reset"}
	}
	keys = append(keys,
		"1-5 line",
		"c clip",
		"g game/gallery",
		"Tab files",
		"p paste",
		"t stats",
		"h help",
		"q quit",
	)
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
