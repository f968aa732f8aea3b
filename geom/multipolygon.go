package geom

// MultiPolygon owns a Geometry value. The Geometry field stays
// mutable; nothing is validated until serialization, matching the
// permissive-parse / strict-serialize split of ParseWKT and ToWKT.
// Concurrent mutation of a single instance needs external locking.
type MultiPolygon struct {
	Geometry Geometry
}

// NewMultiPolygon wraps nested coordinates as-is, no validation.
func NewMultiPolygon(g Geometry) *MultiPolygon {
	return &MultiPolygon{Geometry: g}
}

// NewMultiPolygonFromWKT parses the text permissively; malformed
// input leaves the entity holding an empty Geometry.
func NewMultiPolygonFromWKT(wkt string) *MultiPolygon {
	return &MultiPolygon{Geometry: ParseWKT(wkt)}
}

// Clone returns a deep, non-aliased copy: mutating the clone's rings
// or points never affects the original.
func (m *MultiPolygon) Clone() *MultiPolygon {
	return &MultiPolygon{Geometry: m.Geometry.Clone()}
}

// Equal compares against raw nested coordinates, order-sensitive at
// every level.
func (m *MultiPolygon) Equal(other Geometry) bool {
	return m.Geometry.Equal(other)
}

// EqualMultiPolygon compares against another entity; nil compares
// unequal rather than panicking.
func (m *MultiPolygon) EqualMultiPolygon(other *MultiPolygon) bool {
	if other == nil {
		return false
	}
	return m.Geometry.Equal(other.Geometry)
}

// IsMulti reports the shape classification of the owned Geometry.
func (m *MultiPolygon) IsMulti() bool {
	return IsMultiPolygon(m.Geometry)
}

// WKT re-serializes the owned Geometry via ToWKT.
func (m *MultiPolygon) WKT(forceMulti bool, fallback string) string {
	return ToWKT(m.Geometry, forceMulti, fallback)
}
