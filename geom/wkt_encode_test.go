package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWKTSinglePolygon(t *testing.T) {
	g := Geometry{{Ring{{30, 10}, {40, 40}, {20, 40}, {10, 20}, {30, 10}}}}
	assert.Equal(t, "POLYGON((30 10, 40 40, 20 40, 10 20, 30 10))", ToWKT(g, false, EmptyPolygon))
}

func TestToWKTForceMultiPolygon(t *testing.T) {
	g := Geometry{{Ring{{30, 10}, {40, 40}, {20, 40}, {10, 20}, {30, 10}}}}
	assert.Equal(t, "MULTIPOLYGON(((30 10, 40 40, 20 40, 10 20, 30 10)))", ToWKT(g, true, EmptyPolygon))
}

func TestToWKTPolygonWithHoleUsesMultiForm(t *testing.T) {
	g := Geometry{{
		Ring{{35, 10}, {45, 45}, {15, 40}, {10, 20}, {35, 10}},
		Ring{{20, 30}, {35, 35}, {30, 20}, {20, 30}},
	}}
	want := "MULTIPOLYGON(((35 10, 45 45, 15 40, 10 20, 35 10), (20 30, 35 35, 30 20, 20 30)))"
	assert.Equal(t, want, ToWKT(g, false, EmptyPolygon))
}

func TestToWKTMultiplePolygons(t *testing.T) {
	g := Geometry{
		{Ring{{30, 20}, {45, 40}, {10, 40}, {30, 20}}},
		{Ring{{15, 5}, {40, 10}, {10, 20}, {5, 10}, {15, 5}}},
	}
	want := "MULTIPOLYGON(((30 20, 45 40, 10 40, 30 20)), ((15 5, 40 10, 10 20, 5 10, 15 5)))"
	assert.Equal(t, want, ToWKT(g, false, EmptyPolygon))
}

func TestToWKTInvalidGeometry(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
	}{
		{"unclosed ring", Geometry{{Ring{{3, 1}, {50, 100}}}}},
		{"empty ring", Geometry{{Ring{}}}},
		{"empty ring among valid", Geometry{
			{Ring{{0, 0}, {1, 0}, {0, 0}}},
			{Ring{}},
		}},
		{"ringless polygon", Geometry{{}}},
		{"no polygons", Geometry{}},
	}
	for _, tt := range tests {
		assert.Equal(t, EmptyPolygon, ToWKT(tt.g, false, EmptyPolygon), tt.name)
		assert.Equal(t, EmptyPoint, ToWKT(tt.g, false, EmptyPoint), tt.name)
	}
}

func TestToWKTFractionalCoordinates(t *testing.T) {
	g := Geometry{{Ring{{1.5, -2.25}, {3.125, 4}, {1.5, -2.25}}}}
	assert.Equal(t, "POLYGON((1.5 -2.25, 3.125 4, 1.5 -2.25))", ToWKT(g, false, EmptyPolygon))
}

func TestWKTRoundTrip(t *testing.T) {
	geoms := map[string]Geometry{
		"single ring": {{Ring{{30, 10}, {40, 40}, {20, 40}, {10, 20}, {30, 10}}}},
		"with hole": {{
			Ring{{35, 10}, {45, 45}, {15, 40}, {10, 20}, {35, 10}},
			Ring{{20, 30}, {35, 35}, {30, 20}, {20, 30}},
		}},
		"two polygons": {
			{Ring{{30, 20}, {45, 40}, {10, 40}, {30, 20}}},
			{Ring{{15, 5}, {40, 10}, {10, 20}, {5, 10}, {15, 5}}},
		},
		"fractional": {{Ring{{0.5, 0.5}, {2.5, 0.5}, {1.5, 3.75}, {0.5, 0.5}}}},
	}
	for name, g := range geoms {
		out := ToWKT(g, false, EmptyPolygon)
		back := ParseWKT(out)
		require.True(t, g.Equal(back), "%s: %q reparsed differently", name, out)
		assert.Equal(t, IsMultiPolygon(g), IsMultiPolygon(back), name)

		// Forcing the multipolygon form must still reparse to the
		// same shape: a multipolygon-of-one collapses on reparse.
		forced := ToWKT(g, true, EmptyPolygon)
		assert.True(t, g.Equal(ParseWKT(forced)), "%s forced: %q", name, forced)
	}
}
