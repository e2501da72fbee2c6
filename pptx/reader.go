package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/slidecraft/slidecraft/template"
)

// Template is an in-memory snapshot of a PPTX template's layout
// inventory. It implements template.Source. The underlying file is
// fully read and closed inside Open, so a Template never observes
// later modifications to the file and is safe for concurrent reads.
type Template struct {
	layouts []template.Layout
}

// Open reads the slide layouts from a PPTX template file.
func Open(filename string) (*Template, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	defer zr.Close()

	return read(&zr.Reader)
}

// OpenReader reads the slide layouts from PPTX bytes accessible through r.
func OpenReader(r io.ReaderAt, size int64) (*Template, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return read(zr)
}

// read parses all slide layouts out of the archive.
func read(zr *zip.Reader) (*Template, error) {
	if err := validate(zr); err != nil {
		return nil, err
	}

	// Find all layout files, ordered by number.
	layoutFiles := make([]string, 0)
	for _, f := range zr.File {
		if isLayoutFile(f.Name) {
			layoutFiles = append(layoutFiles, f.Name)
		}
	}
	sort.Slice(layoutFiles, func(i, j int) bool {
		return extractLayoutNumber(layoutFiles[i]) < extractLayoutNumber(layoutFiles[j])
	})

	t := &Template{layouts: make([]template.Layout, 0, len(layoutFiles))}
	for _, name := range layoutFiles {
		layout, err := parseLayout(zr, name)
		if err != nil {
			continue // Skip layouts that fail to parse
		}
		t.layouts = append(t.layouts, layout)
	}

	if len(t.layouts) == 0 {
		return nil, fmt.Errorf("no slide layouts could be parsed")
	}
	return t, nil
}

// validate checks that required PPTX files exist.
func validate(zr *zip.Reader) error {
	required := []string{
		"[Content_Types].xml",
		"ppt/presentation.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range zr.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	for name := range fileMap {
		if isLayoutFile(name) {
			return nil
		}
	}
	return fmt.Errorf("no slide layouts found in template")
}

func isLayoutFile(name string) bool {
	return strings.HasPrefix(name, "ppt/slideLayouts/slideLayout") &&
		strings.HasSuffix(name, ".xml") &&
		!strings.Contains(name, "_rels")
}

// extractLayoutNumber extracts the layout number from a path like
// "ppt/slideLayouts/slideLayout1.xml".
func extractLayoutNumber(path string) int {
	name := strings.TrimPrefix(path, "ppt/slideLayouts/slideLayout")
	name = strings.TrimSuffix(name, ".xml")
	var num int
	fmt.Sscanf(name, "%d", &num)
	return num
}

// parseLayout parses a single slide layout file.
func parseLayout(zr *zip.Reader, name string) (template.Layout, error) {
	data, err := fileContent(zr, name)
	if err != nil {
		return template.Layout{}, err
	}

	var layoutXML slideLayoutXML
	if err := xml.Unmarshal(data, &layoutXML); err != nil {
		return template.Layout{}, err
	}

	layout := template.Layout{Name: layoutXML.CSld.Name}
	for _, sp := range layoutXML.CSld.SpTree.Sp {
		ph := sp.NvSpPr.NvPr.Ph
		if ph == nil {
			continue // Not a placeholder shape
		}
		layout.Placeholders = append(layout.Placeholders, mapPlaceholder(ph))
	}
	return layout, nil
}

// fileContent reads the content of a file from the ZIP archive.
func fileContent(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// mapPlaceholder converts an OOXML placeholder to a template slot. The
// handle is stable across runs: placeholder type plus idx attribute.
func mapPlaceholder(ph *phXML) template.Placeholder {
	phType := ph.Type
	if phType == "" {
		// Untyped placeholders hold body text.
		phType = "body"
	}

	var role template.SlotRole
	switch ph.Type {
	case "title", "ctrTitle":
		role = template.SlotTitle
	case "subTitle":
		role = template.SlotSubtitle
	case "ftr", "dt", "sldNum", "hdr":
		role = template.SlotChrome
	default:
		role = template.SlotBody
	}

	return template.Placeholder{
		Role:   role,
		Handle: template.SlotHandle(fmt.Sprintf("%s:%d", phType, ph.Idx)),
	}
}

// Layouts returns the template's layouts in template order.
func (t *Template) Layouts() []template.Layout {
	out := make([]template.Layout, len(t.layouts))
	copy(out, t.layouts)
	return out
}

// LayoutCount returns the number of layouts in the template.
func (t *Template) LayoutCount() int {
	return len(t.layouts)
}

// Catalog classifies the template's layouts into a catalog with the
// default classification configuration.
func (t *Template) Catalog() (*template.Catalog, error) {
	return template.Build(t)
}
