package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/S-Elephant/polymap/geom"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Loaded geometry
	geo     geom.Geometry
	bbox    geom.BBox
	hasBBox bool

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showFill  bool
	showEdges bool
	showVerts bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverMicX  int
	hoverMicY  int

	// ring inspector table
	showRings bool
	tbl       table.Model
}

func New() Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "polymap ready",
		showFill:    true,
		showEdges:   true,
		showVerts:   false,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POLYGON or MULTIPOLYGON). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// ring inspector table (rows rebuilt per dataset)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's geometry at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

// setGeometry installs a new geometry and recomputes the extent.
func (m *Model) setGeometry(g geom.Geometry) {
	m.geo = g
	m.bbox, m.hasBBox = g.BBox()
}

func (m Model) Init() tea.Cmd { return nil }
