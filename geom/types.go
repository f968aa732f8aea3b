package geom

// Point is a 2D coordinate pair. Compared exactly, no tolerance.
type Point struct {
	X float64
	Y float64
}

// Ring is an ordered boundary walk. A closed ring repeats its first
// point as its last point.
type Ring []Point

// Polygon holds one exterior ring followed by any number of holes.
type Polygon []Ring

// Geometry is the nested polygon container shared by the parser,
// serializer and viewer: polygons → rings → points. A single polygon
// is a one-element Geometry.
type Geometry []Polygon

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Closed reports whether the ring is non-empty and its first point
// equals its last point.
func (r Ring) Closed() bool {
	return len(r) > 0 && r[0] == r[len(r)-1]
}

func (r Ring) Clone() Ring {
	if r == nil {
		return nil
	}
	out := make(Ring, len(r))
	copy(out, r)
	return out
}

func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	for i, ring := range p {
		out[i] = ring.Clone()
	}
	return out
}

// Clone returns a deep copy: new slices at every nesting level, so
// mutating the copy never touches the original.
func (g Geometry) Clone() Geometry {
	if g == nil {
		return nil
	}
	out := make(Geometry, len(g))
	for i, poly := range g {
		out[i] = poly.Clone()
	}
	return out
}

// Equal reports deep structural equality, order-sensitive at every
// level, coordinates compared exactly.
func (g Geometry) Equal(o Geometry) bool {
	if len(g) != len(o) {
		return false
	}
	for i, poly := range g {
		if len(poly) != len(o[i]) {
			return false
		}
		for j, ring := range poly {
			other := o[i][j]
			if len(ring) != len(other) {
				return false
			}
			for k, pt := range ring {
				if pt != other[k] {
					return false
				}
			}
		}
	}
	return true
}

// BBox returns the extent over all vertices; ok is false when the
// geometry holds no points at all.
func (g Geometry) BBox() (bb BBox, ok bool) {
	for _, poly := range g {
		for _, ring := range poly {
			for _, p := range ring {
				if !ok {
					bb = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
					ok = true
					continue
				}
				if p.X < bb.MinX {
					bb.MinX = p.X
				}
				if p.Y < bb.MinY {
					bb.MinY = p.Y
				}
				if p.X > bb.MaxX {
					bb.MaxX = p.X
				}
				if p.Y > bb.MaxY {
					bb.MaxY = p.Y
				}
			}
		}
	}
	return bb, ok
}
