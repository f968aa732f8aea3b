package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"github.com/S-Elephant/polymap/geom"
)

// refreshRingTable rebuilds the ring inspector from the loaded
// geometry: one row per ring with its role and closure status.
func (m *Model) refreshRingTable() {
	rows := ringRows(m.geo)
	if len(rows) == 0 {
		m.showRings = false
		m.status = "no rings to inspect"
		return
	}
	cols := []table.Column{
		{Title: "poly", Width: 5},
		{Title: "ring", Width: 5},
		{Title: "role", Width: 9},
		{Title: "verts", Width: 6},
		{Title: "closed", Width: 7},
	}
	// clear rows before swapping columns to avoid transient mismatch
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	m.tbl.SetHeight(min(len(rows)+2, 14))
}

func ringRows(g geom.Geometry) []table.Row {
	var rows []table.Row
	for pi, poly := range g {
		for ri, ring := range poly {
			role := "exterior"
			if ri > 0 {
				role = "hole"
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", pi+1),
				fmt.Sprintf("%d", ri+1),
				role,
				fmt.Sprintf("%d", len(ring)),
				fmt.Sprintf("%v", ring.Closed()),
			})
		}
	}
	return rows
}
