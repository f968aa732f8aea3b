package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"github.com/S-Elephant/polymap/geom"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".wkt" || ext == ".geojson" || ext == ".json" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath loads a .wkt or GeoJSON file into the model.
func (m *Model) loadPath(p string) {
	m.selPath = p
	switch strings.ToLower(filepath.Ext(p)) {
	case ".wkt":
		data, err := os.ReadFile(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		g := geom.ParseWKT(string(data))
		if len(g) == 0 {
			m.status = "wkt: no polygons parsed (unrecognized or malformed)"
			return
		}
		m.setGeometry(g)
		m.status = "loaded: " + filepath.Base(p)
	case ".geojson", ".json":
		g, err := geom.LoadGeoJSON(p)
		if err != nil {
			m.status = "load error: " + err.Error()
			return
		}
		m.setGeometry(g)
		m.status = "loaded: " + filepath.Base(p)
	default:
		m.status = "unsupported file: " + filepath.Ext(p)
	}
}
