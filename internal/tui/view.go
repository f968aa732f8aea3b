package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Layout sizes
	sidebarWidth := 0
	if m.showSidebar {
		sidebarWidth = 28
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	if m.showSidebar {
		m.l.SetSize(28-2, contentHeight-2)
	}

	// Header
	header := titleStyle.Render(" polymap ─ wkt polygon viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	// Map viewport
	mapWidth := contentWidth - sidebarWidth - 1
	if mapWidth < 10 {
		mapWidth = 10
	}
	mapHeight := contentHeight
	m.mapW = max(8, mapWidth)
	m.mapH = max(4, mapHeight)

	var canvas string
	switch {
	case m.pasteMode:
		m.ta.SetWidth(m.mapW)
		m.ta.SetHeight(min(m.mapH, 12))
		canvas = m.ta.View()
	case m.showRings:
		canvas = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center,
			boxStyle.Render(m.tbl.View()))
	default:
		canvas = m.renderCanvas(m.mapW, m.mapH)
	}
	mapView := lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(canvas)

	// Inspect popup overlay
	popup := ""
	if m.inspectPopup != "" {
		maxPopupW := min(66, contentWidth-4)
		if maxPopupW < 20 {
			maxPopupW = 20
		}
		box := boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, contentHeight, lipgloss.Left, lipgloss.Center, box)
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer: status, shape summary, help
	polys, rings, verts := m.counts()
	summary := dimStyle.Render(fmt.Sprintf(" %s · polys=%d rings=%d verts=%d ", m.describeShape(), polys, rings, verts))
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).
		Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, summary, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"Tab sidebar",
		"Enter open",
		"p paste",
		"w wkt",
		"r rings",
		"i inspect",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
