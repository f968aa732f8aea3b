package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Elephant/polymap/geom"
)

func testModel(wkt string) Model {
	m := Model{zoom: 1.0, showFill: true, showEdges: true}
	m.setGeometry(geom.ParseWKT(wkt))
	return m
}

func TestScreenXYCorners(t *testing.T) {
	m := testModel("POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))")
	require.True(t, m.hasBBox)

	x, y, ok := m.screenXY(0, 10, 20, 10) // top-left of the extent
	require.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y, ok = m.screenXY(10, 0, 20, 10) // bottom-right
	require.True(t, ok)
	assert.Equal(t, 19, x)
	assert.Equal(t, 9, y)
}

func TestScreenXYNoExtent(t *testing.T) {
	m := Model{zoom: 1.0}
	_, _, ok := m.screenXY(1, 1, 20, 10)
	assert.False(t, ok)

	// a degenerate (zero-area) extent cannot be projected either
	m.setGeometry(geom.Geometry{{geom.Ring{{X: 5, Y: 5}}}})
	_, _, ok = m.screenXY(5, 5, 20, 10)
	assert.False(t, ok)
}

func TestCellToXYInvertsScreenXY(t *testing.T) {
	m := testModel("POLYGON((0 0, 100 0, 100 50, 0 50, 0 0))")
	m.zoom = 2.0
	m.offsetX = 3
	m.offsetY = -1
	sx, sy, ok := m.screenXY(25, 40, 80, 24)
	require.True(t, ok)
	x, y, ok := m.cellToXY(sx, sy, 80, 24)
	require.True(t, ok)
	assert.InDelta(t, 25, x, 2.0)
	assert.InDelta(t, 40, y, 2.0)
}

func TestRenderCanvasDrawsGeometry(t *testing.T) {
	m := testModel("POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))")
	out := m.renderCanvas(20, 10)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	assert.NotEmpty(t, strings.TrimSpace(out), "canvas should not be blank")

	// with every layer off the canvas stays blank
	m.showFill, m.showEdges, m.showVerts = false, false, false
	assert.Empty(t, strings.TrimSpace(m.renderCanvas(20, 10)))
}

func TestNearestVertex(t *testing.T) {
	m := testModel("POLYGON((0 0, 10 0, 10 10, 0 10, 0 0))")
	m.mapW, m.mapH = 20, 10
	_, _, ok := m.nearestVertex()
	assert.True(t, ok)

	empty := Model{zoom: 1.0}
	_, _, ok = empty.nearestVertex()
	assert.False(t, ok)
}

func TestCountsAndDescribeShape(t *testing.T) {
	m := testModel("POLYGON ((35 10, 45 45, 15 40, 10 20, 35 10), (20 30, 35 35, 30 20, 20 30))")
	polys, rings, verts := m.counts()
	assert.Equal(t, 1, polys)
	assert.Equal(t, 2, rings)
	assert.Equal(t, 9, verts)
	assert.Equal(t, "multipolygon (1 polys)", m.describeShape())

	single := testModel("POLYGON((0 0, 1 0, 0 1, 0 0))")
	assert.Equal(t, "polygon", single.describeShape())

	assert.Equal(t, "empty", Model{}.describeShape())
}

func TestWrapForPopup(t *testing.T) {
	assert.Equal(t, "short", wrapForPopup("short", 10))
	wrapped := wrapForPopup(strings.Repeat("a", 25), 10)
	assert.Equal(t, 3, len(strings.Split(wrapped, "\n")))
}
