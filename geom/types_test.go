package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingClosed(t *testing.T) {
	assert.False(t, Ring{}.Closed())
	assert.True(t, Ring{{5, 5}}.Closed())
	assert.False(t, Ring{{3, 1}, {50, 100}}.Closed())
	assert.True(t, Ring{{3, 1}, {50, 100}, {3, 1}}.Closed())
}

func TestGeometryBBox(t *testing.T) {
	g := ParseWKT("MULTIPOLYGON(((30 20, 45 40, 10 40, 30 20)), ((15 5, 40 10, 10 20, 5 10, 15 5)))")
	bb, ok := g.BBox()
	require.True(t, ok)
	assert.Equal(t, BBox{MinX: 5, MinY: 5, MaxX: 45, MaxY: 40}, bb)

	_, ok = Geometry{}.BBox()
	assert.False(t, ok)
	_, ok = Geometry{{Ring{}}}.BBox()
	assert.False(t, ok)
}

func TestGeometryCloneDeep(t *testing.T) {
	g := ParseWKT("POLYGON((0 0, 4 0, 2 3, 0 0), (1 1, 2 1, 1 2, 1 1))")
	c := g.Clone()
	require.True(t, g.Equal(c))

	c[0][1][0] = Point{X: 9, Y: 9}
	assert.Equal(t, Point{X: 1, Y: 1}, g[0][1][0])
	assert.False(t, g.Equal(c))
}
