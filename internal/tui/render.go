package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// screenXY maps a coordinate to cell coordinates considering zoom and pan.
func (m Model) screenXY(x, y float64, w, h int) (int, int, bool) {
	if !m.hasBBox || !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	nx := (x - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (y - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	// zoom around the viewport center
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// screenXYMicro maps a coordinate into the 2x4 microgrid per cell.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	if !m.hasBBox || !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	nx := (x - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (y - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// cellToXY converts a map cell back to geometry coordinates.
func (m Model) cellToXY(cx, cy, w, h int) (float64, float64, bool) {
	if !m.hasBBox || !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	x := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	y := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return x, y, true
}

func (m Model) renderCanvas(w, h int) string {
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		lines[y] = strings.Repeat(" ", w)
	}
	br := newBrailleBuf(w, h)

	for _, poly := range m.geo {
		// project every ring to microgrid coords
		var ringsMic [][][2]int
		for _, ring := range poly {
			var sm [][2]int
			for _, p := range ring {
				mx, my, ok := m.screenXYMicro(p.X, p.Y, w, h)
				if !ok {
					continue
				}
				sm = append(sm, [2]int{mx, my})
			}
			ringsMic = append(ringsMic, sm)
		}

		// fill with even-odd scanlines over all rings, so holes stay open
		if m.showFill {
			fillEvenOdd(br, ringsMic, h*4)
		}

		// ring outlines
		if m.showEdges {
			for _, r := range ringsMic {
				if len(r) < 2 {
					continue
				}
				for i := 0; i < len(r); i++ {
					a := r[i]
					b := r[(i+1)%len(r)]
					br.drawLineMicro(a[0], a[1], b[0], b[1])
				}
			}
		}

		// vertex markers
		if m.showVerts {
			for _, r := range ringsMic {
				for _, p := range r {
					br.setPixel(p[0], p[1])
				}
			}
		}
	}

	// composite braille over the blank canvas
	braLines := br.toLines()
	for y := 0; y < h && y < len(braLines); y++ {
		if strings.TrimSpace(braLines[y]) == "" {
			continue
		}
		base := []rune(lines[y])
		over := []rune(braLines[y])
		for x := 0; x < len(base) && x < len(over); x++ {
			if over[x] != ' ' {
				base[x] = over[x]
			}
		}
		lines[y] = string(base)
	}

	// hover highlight on the snapped vertex
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				marker := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("◯")
				lines[cy] = string(r[:cx]) + marker + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// fillEvenOdd rasterizes a polygon's rings with the even-odd rule per
// microgrid scanline. Holes contribute crossings like the exterior
// does, which leaves them unfilled.
func fillEvenOdd(br *brailleBuf, ringsMic [][][2]int, hMic int) {
	var edges [][2][2]int
	for _, r := range ringsMic {
		if len(r) < 3 {
			continue
		}
		for i := 0; i < len(r); i++ {
			edges = append(edges, [2][2]int{r[i], r[(i+1)%len(r)]})
		}
	}
	if len(edges) == 0 {
		return
	}
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for _, e := range edges {
			a, b := e[0], e[1]
			if a[1] == b[1] { // horizontal edge: skip
				continue
			}
			if (yMic >= a[1] && yMic < b[1]) || (yMic >= b[1] && yMic < a[1]) {
				t := float64(yMic-a[1]) / float64(b[1]-a[1])
				xs = append(xs, int(float64(a[0])+t*float64(b[0]-a[0])))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := xs[i], xs[i+1]
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			for x := max(0, x0); x <= x1; x++ {
				br.setPixel(x, yMic)
			}
		}
	}
}

// nearestVertex finds the geometry vertex closest to the viewport
// center in screen space.
func (m Model) nearestVertex() (x, y float64, ok bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy := w/2, h/2
	bestD := 1<<31 - 1
	for _, poly := range m.geo {
		for _, ring := range poly {
			for _, p := range ring {
				sx, sy, ok2 := m.screenXY(p.X, p.Y, w, h)
				if !ok2 {
					continue
				}
				dx := sx - cx
				dy := sy - cy
				d := dx*dx + dy*dy
				if d < bestD {
					bestD = d
					x, y = p.X, p.Y
				}
			}
		}
	}
	return x, y, bestD != 1<<31-1
}
