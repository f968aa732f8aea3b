package geom

import (
	"encoding/json"
	"errors"
	"os"
)

// LoadGeoJSON reads a GeoJSON file and collects every Polygon and
// MultiPolygon geometry into one Geometry value. Features of other
// types are skipped; a file with no polygonal geometry is an error.
func LoadGeoJSON(path string) (Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var g Geometry
	var walkGeom func(node map[string]any)
	walkGeom = func(node map[string]any) {
		t, _ := node["type"].(string)
		switch t {
		case "Polygon":
			if poly, ok := jsonPolygon(node["coordinates"]); ok {
				g = append(g, poly)
			}
		case "MultiPolygon":
			arr, ok := node["coordinates"].([]any)
			if !ok {
				return
			}
			for _, el := range arr {
				if poly, ok := jsonPolygon(el); ok {
					g = append(g, poly)
				}
			}
		case "GeometryCollection":
			geoms, _ := node["geometries"].([]any)
			for _, sub := range geoms {
				if sm, ok := sub.(map[string]any); ok {
					walkGeom(sm)
				}
			}
		}
	}

	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if node, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(node)
		}
	case "FeatureCollection":
		if fs, ok := raw["features"].([]any); ok {
			for _, f := range fs {
				if fm, ok := f.(map[string]any); ok {
					if node, ok := fm["geometry"].(map[string]any); ok {
						walkGeom(node)
					}
				}
			}
		}
	default:
		if len(raw) > 0 {
			walkGeom(raw)
		}
	}
	if len(g) == 0 {
		return nil, errors.New("geojson: no polygon geometries found")
	}
	return g, nil
}

// jsonPolygon converts one GeoJSON polygon coordinate array
// (rings of [x, y] pairs) into a Polygon.
func jsonPolygon(v any) (Polygon, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	var poly Polygon
	for _, ringVal := range arr {
		pts, ok := ringVal.([]any)
		if !ok {
			continue
		}
		var ring Ring
		for _, ptVal := range pts {
			pair, ok := ptVal.([]any)
			if !ok || len(pair) < 2 {
				continue
			}
			x, xok := pair[0].(float64)
			y, yok := pair[1].(float64)
			if !xok || !yok {
				continue
			}
			ring = append(ring, Point{X: x, Y: y})
		}
		poly = append(poly, ring)
	}
	if len(poly) == 0 {
		return nil, false
	}
	return poly, true
}
