package geom

import (
	"strconv"
	"strings"
)

// WKT empty-geometry literals. ParseWKT maps every one of them to a
// zero-polygon Geometry; callers hand them to ToWKT as fallbacks.
const (
	EmptyPoint              = "POINT EMPTY"
	EmptyLineString         = "LINESTRING EMPTY"
	EmptyMultiPoint         = "MULTIPOINT EMPTY"
	EmptyPolygon            = "POLYGON EMPTY"
	EmptyMultiLineString    = "MULTILINESTRING EMPTY"
	EmptyMultiPolygon       = "MULTIPOLYGON EMPTY"
	EmptyGeometryCollection = "GEOMETRYCOLLECTION EMPTY"
)

// ParseWKT parses POLYGON and MULTIPOLYGON text into a Geometry.
// It is a total function: unrecognized keywords, unbalanced
// parentheses and unparseable coordinates all yield a zero-polygon
// Geometry instead of an error, so callers always receive a usable
// value. The inverse direction (ToWKT) is strict instead.
func ParseWKT(wkt string) Geometry {
	s := strings.TrimSpace(wkt)
	if isEmptyLiteral(s) {
		return Geometry{}
	}
	switch {
	case strings.HasPrefix(s, "MULTIPOLYGON"):
		root, ok := scanBody(s[len("MULTIPOLYGON"):])
		if !ok {
			return Geometry{}
		}
		var g Geometry
		for _, grp := range root.groups {
			poly, ok := buildPolygon(grp)
			if !ok {
				return Geometry{}
			}
			g = append(g, poly)
		}
		return g
	case strings.HasPrefix(s, "POLYGON"):
		root, ok := scanBody(s[len("POLYGON"):])
		if !ok {
			return Geometry{}
		}
		poly, ok := buildPolygon(root)
		if !ok {
			return Geometry{}
		}
		return Geometry{poly}
	}
	return Geometry{}
}

// IsMultiPolygon classifies a Geometry by shape alone: more than one
// polygon, or a single polygon carrying more than one ring (a hole),
// counts as a multipolygon. How the value was produced is irrelevant,
// so POLYGON((r)) and MULTIPOLYGON(((r))) classify identically.
func IsMultiPolygon(g Geometry) bool {
	if len(g) > 1 {
		return true
	}
	return len(g) == 1 && len(g[0]) > 1
}

func isEmptyLiteral(s string) bool {
	switch s {
	case EmptyPoint, EmptyLineString, EmptyMultiPoint, EmptyPolygon,
		EmptyMultiLineString, EmptyMultiPolygon, EmptyGeometryCollection:
		return true
	}
	return false
}

// group is one parenthesized node of the WKT body. Inner parentheses
// become child groups; a node without children keeps its raw
// coordinate text. The scanner is depth-agnostic: POLYGON bodies come
// back two levels deep, MULTIPOLYGON bodies three, and the parser
// decides what the levels mean.
type group struct {
	groups []group
	text   string
}

// scanBody scans the text following the type keyword. Whitespace
// before the opening parenthesis is tolerated; anything else, or
// unbalanced nesting, fails the scan.
func scanBody(s string) (group, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || s[0] != '(' {
		return group{}, false
	}
	root, end, ok := scanGroup(s, 0)
	if !ok || strings.TrimSpace(s[end:]) != "" {
		return group{}, false
	}
	return root, true
}

// scanGroup consumes one balanced parenthesized group starting at
// s[i] == '(' and returns the index just past its closing parenthesis.
func scanGroup(s string, i int) (group, int, bool) {
	i++ // opening parenthesis
	var g group
	var text strings.Builder
	for i < len(s) {
		switch s[i] {
		case '(':
			child, next, ok := scanGroup(s, i)
			if !ok {
				return group{}, i, false
			}
			g.groups = append(g.groups, child)
			i = next
		case ')':
			g.text = text.String()
			return g, i + 1, true
		default:
			text.WriteByte(s[i])
			i++
		}
	}
	return group{}, i, false // ran out of input before the close
}

// buildPolygon interprets one polygon-level group: its children are
// rings, the first one exterior. A childless group is read as a single
// ring so that a flat POLYGON(...) body and a degenerate empty group
// both still produce a polygon; the empty case yields a zero-point
// ring that ToWKT later refuses.
func buildPolygon(g group) (Polygon, bool) {
	if len(g.groups) == 0 {
		ring, ok := buildRing(g.text)
		if !ok {
			return nil, false
		}
		return Polygon{ring}, true
	}
	poly := make(Polygon, 0, len(g.groups))
	for _, child := range g.groups {
		ring, ok := buildRing(child.text)
		if !ok {
			return nil, false
		}
		poly = append(poly, ring)
	}
	return poly, true
}

// buildRing parses "x y, x y, ..." coordinate text. Blank text is an
// empty ring, not a failure; a malformed pair fails the whole parse.
func buildRing(text string) (Ring, bool) {
	var ring Ring
	for _, tuple := range strings.Split(text, ",") {
		tuple = strings.TrimSpace(tuple)
		if tuple == "" {
			continue
		}
		parts := strings.Fields(tuple)
		if len(parts) != 2 {
			return nil, false
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return nil, false
		}
		ring = append(ring, Point{X: x, Y: y})
	}
	return ring, true
}
