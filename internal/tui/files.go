package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"cannons/internal/geom"
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
		name := e.Name()
		if e.IsDir() || !geom.Supported(name) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no shape files in current directory"
	}
}

// loadPath loads a shape file into the gallery and switches to it.
func (m *Model) loadPath(p string) {
	d, err := geom.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.setData(d)
	m.status = "loaded: " + filepath.Base(p) + "  " + counts(d)
}

// setData replaces the gallery shapes and resets the view on them.
func (m *Model) setData(d geom.Data) {
	m.data = d
	m.mode = modeGallery
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	if m.showStats {
		m.refreshStats()
	}
}

func counts(d geom.Data) string {
	return fmt.Sprintf("counts: pts=%d ls=%d poly=%d", len(d.Points), len(d.Lines), len(d.Polygons))
}
