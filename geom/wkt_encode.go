package geom

import (
	"strconv"
	"strings"
)

// ToWKT serializes a Geometry to canonical WKT. Unlike ParseWKT it is
// strict: if any ring is empty or not closed, or the geometry holds no
// polygons at all, the caller-supplied fallback literal is returned
// whole — never a partial or "repaired" serialization. Rings are not
// closed automatically.
//
// A single polygon with a single ring emits the POLYGON form unless
// forceMulti asks for a one-element MULTIPOLYGON.
func ToWKT(g Geometry, forceMulti bool, fallback string) string {
	if len(g) == 0 {
		return fallback
	}
	for _, poly := range g {
		if len(poly) == 0 {
			return fallback
		}
		for _, ring := range poly {
			if !ring.Closed() {
				return fallback
			}
		}
	}

	var b strings.Builder
	if len(g) == 1 && len(g[0]) == 1 && !forceMulti {
		b.WriteString("POLYGON(")
		writeRing(&b, g[0][0])
		b.WriteByte(')')
		return b.String()
	}
	b.WriteString("MULTIPOLYGON(")
	for i, poly := range g {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for j, ring := range poly {
			if j > 0 {
				b.WriteString(", ")
			}
			writeRing(&b, ring)
		}
		b.WriteByte(')')
	}
	b.WriteByte(')')
	return b.String()
}

func writeRing(b *strings.Builder, r Ring) {
	b.WriteByte('(')
	for i, p := range r {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatCoord(p.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(p.Y))
	}
	b.WriteByte(')')
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
