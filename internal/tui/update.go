package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/S-Elephant/polymap/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; refined in View
		}
	case tea.KeyMsg:
		// While the list is filtering, it owns the keyboard.
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
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
				g := geom.ParseWKT(w)
				if len(g) == 0 {
					m.status = "wkt: no polygons parsed (unrecognized or malformed)"
					return m, nil
				}
				m.setGeometry(g)
				m.selPath = ""
				m.status = fmt.Sprintf("rendered WKT: %s", m.describeShape())
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showRings {
			switch msg.String() {
			case "esc", "r":
				m.showRings = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showFill = !m.showFill
			m.status = fmt.Sprintf("fill: %v", m.showFill)
		case "2":
			m.showEdges = !m.showEdges
			m.status = fmt.Sprintf("edges: %v", m.showEdges)
		case "3":
			m.showVerts = !m.showVerts
			m.status = fmt.Sprintf("vertices: %v", m.showVerts)
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
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "r":
			m.showRings = !m.showRings
			if m.showRings {
				m.refreshRingTable()
			}
		case "w":
			// canonical serialization of the current geometry; invalid
			// rings fall back to the MULTIPOLYGON EMPTY literal
			out := geom.ToWKT(m.geo, false, geom.EmptyMultiPolygon)
			m.inspectPopup = wrapForPopup(out, 64)
			m.status = "serialized WKT"
		case "h":
			m.helpVisible = !m.helpVisible
		case "i":
			x, y, ok := m.nearestVertex()
			if ok {
				name := filepath.Base(m.selPath)
				if name == "." || name == "" {
					name = "<pasted>"
				}
				polys, rings, verts := m.counts()
				meta := []string{
					fmt.Sprintf("name: %s", name),
					fmt.Sprintf("shape: %s", m.describeShape()),
					fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", m.bbox.MinX, m.bbox.MinY, m.bbox.MaxX, m.bbox.MaxY),
					fmt.Sprintf("counts: polys=%d rings=%d verts=%d", polys, rings, verts),
					fmt.Sprintf("nearest: x=%.6f y=%.6f", x, y),
				}
				m.inspectPopup = strings.Join(meta, "\n")
				m.status = "inspect popup"
			} else {
				m.inspectPopup = "no geometry loaded"
				m.status = m.inspectPopup
			}
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.updateHover(msg)
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateHover tracks the mouse over the map area and snaps to the
// nearest geometry vertex on the microgrid.
func (m *Model) updateHover(msg tea.MouseMsg) {
	// layout must match View
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

	mapWidth := contentWidth - sidebarWidth - 1
	if mapWidth < 10 {
		mapWidth = 10
	}
	mapHeight := contentHeight
	mapOriginX := sidebarWidth
	if m.showSidebar {
		mapOriginX++
	}
	mapOriginY := headerHeight

	cx, cy := msg.X, msg.Y
	if cx < mapOriginX || cx >= mapOriginX+mapWidth || cy < mapOriginY || cy >= mapOriginY+mapHeight {
		m.hovering = false
		return
	}
	m.hovering = true
	m.hoverCellX = cx - mapOriginX
	m.hoverCellY = cy - mapOriginY
	hxMic := m.hoverCellX * 2
	hyMic := m.hoverCellY * 4
	best := 1<<31 - 1
	bx, by := hxMic, hyMic
	for _, poly := range m.geo {
		for _, ring := range poly {
			for _, p := range ring {
				mx, my, ok := m.screenXYMicro(p.X, p.Y, mapWidth, mapHeight)
				if !ok {
					continue
				}
				dx := mx - hxMic
				dy := my - hyMic
				if d := dx*dx + dy*dy; d < best {
					best = d
					bx, by = mx, my
				}
			}
		}
	}
	m.hoverMicX, m.hoverMicY = bx, by
}

// counts tallies polygons, rings and vertices of the loaded geometry.
func (m Model) counts() (polys, rings, verts int) {
	polys = len(m.geo)
	for _, poly := range m.geo {
		rings += len(poly)
		for _, ring := range poly {
			verts += len(ring)
		}
	}
	return polys, rings, verts
}

// describeShape names the loaded geometry by its shape classification.
func (m Model) describeShape() string {
	if len(m.geo) == 0 {
		return "empty"
	}
	if geom.IsMultiPolygon(m.geo) {
		return fmt.Sprintf("multipolygon (%d polys)", len(m.geo))
	}
	return "polygon"
}

// wrapForPopup hard-wraps long WKT output so the popup stays readable.
func wrapForPopup(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var b strings.Builder
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteByte('\n')
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}
