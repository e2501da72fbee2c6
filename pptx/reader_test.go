package pptx

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/slidecraft/slidecraft/template"
)

// writeZipFile writes a file into a zip archive.
func writeZipFile(t *testing.T, zw *zip.Writer, name, content string) {
	t.Helper()
	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("Failed to create %s in zip: %v", name, err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
</Types>`

const presentationXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:sldSz cx="9144000" cy="6858000"/>
</p:presentation>`

// layoutXML builds a slide layout part with the given name and
// placeholder elements.
func layoutXML(name, shapes string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld name="` + name + `">
    <p:spTree>` + shapes + `</p:spTree>
  </p:cSld>
</p:sldLayout>`
}

func shape(id int, phType string, idx string) string {
	ph := `<p:ph`
	if phType != "" {
		ph += ` type="` + phType + `"`
	}
	if idx != "" {
		ph += ` idx="` + idx + `"`
	}
	ph += `/>`
	return `<p:sp><p:nvSpPr><p:cNvPr id="` + strconv.Itoa(id) + `" name="Shape"/><p:nvPr>` + ph + `</p:nvPr></p:nvSpPr></p:sp>`
}

// buildTemplate assembles a PPTX archive in memory. Layout files are
// written in the given order.
func buildTemplate(t *testing.T, layouts map[string]string, includeRequired bool) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if includeRequired {
		writeZipFile(t, zw, "[Content_Types].xml", contentTypesXML)
		writeZipFile(t, zw, "ppt/presentation.xml", presentationXML)
	}
	for name, content := range layouts {
		writeZipFile(t, zw, name, content)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return buf.Bytes()
}

func TestOpenReaderParsesLayouts(t *testing.T) {
	data := buildTemplate(t, map[string]string{
		"ppt/slideLayouts/slideLayout1.xml": layoutXML("Title Slide",
			shape(2, "ctrTitle", "")+shape(3, "subTitle", "1")),
		"ppt/slideLayouts/slideLayout2.xml": layoutXML("Title and Content",
			shape(2, "title", "")+shape(3, "", "1")+shape(4, "ftr", "11")),
	}, true)

	tmpl, err := OpenReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}

	if tmpl.LayoutCount() != 2 {
		t.Fatalf("LayoutCount() = %d, want 2", tmpl.LayoutCount())
	}

	layouts := tmpl.Layouts()
	if layouts[0].Name != "Title Slide" || layouts[1].Name != "Title and Content" {
		t.Errorf("layout names = %q, %q", layouts[0].Name, layouts[1].Name)
	}

	first := layouts[0].Placeholders
	if len(first) != 2 {
		t.Fatalf("first layout has %d placeholders, want 2", len(first))
	}
	if first[0].Role != template.SlotTitle || first[0].Handle != "ctrTitle:0" {
		t.Errorf("ctrTitle mapped to %+v", first[0])
	}
	if first[1].Role != template.SlotSubtitle || first[1].Handle != "subTitle:1" {
		t.Errorf("subTitle mapped to %+v", first[1])
	}

	second := layouts[1].Placeholders
	if second[1].Role != template.SlotBody || second[1].Handle != "body:1" {
		t.Errorf("untyped placeholder mapped to %+v", second[1])
	}
	if second[2].Role != template.SlotChrome {
		t.Errorf("footer mapped to %+v", second[2])
	}
}

func TestOpenReaderOrdersLayoutsByNumber(t *testing.T) {
	layouts := map[string]string{}
	for _, n := range []string{"10", "2", "1"} {
		layouts["ppt/slideLayouts/slideLayout"+n+".xml"] = layoutXML("Layout "+n, shape(2, "title", ""))
	}
	data := buildTemplate(t, layouts, true)

	tmpl, err := OpenReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}

	got := tmpl.Layouts()
	want := []string{"Layout 1", "Layout 2", "Layout 10"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("layout %d = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestOpenReaderValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    func(t *testing.T) []byte
		wantErr string
	}{
		{
			name: "missing presentation part",
			data: func(t *testing.T) []byte {
				var buf bytes.Buffer
				zw := zip.NewWriter(&buf)
				writeZipFile(t, zw, "[Content_Types].xml", contentTypesXML)
				writeZipFile(t, zw, "ppt/slideLayouts/slideLayout1.xml", layoutXML("L", shape(2, "title", "")))
				zw.Close()
				return buf.Bytes()
			},
			wantErr: "missing required file",
		},
		{
			name: "no layouts",
			data: func(t *testing.T) []byte {
				return buildTemplate(t, nil, true)
			},
			wantErr: "no slide layouts",
		},
		{
			name: "not a zip",
			data: func(t *testing.T) []byte {
				return []byte("plain text, not an archive")
			},
			wantErr: "opening ZIP archive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.data(t)
			_, err := OpenReader(bytes.NewReader(data), int64(len(data)))
			if err == nil {
				t.Fatal("OpenReader() succeeded, want error")
			}
			if !bytes.Contains([]byte(err.Error()), []byte(tt.wantErr)) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestOpenReaderSkipsMalformedLayouts(t *testing.T) {
	data := buildTemplate(t, map[string]string{
		"ppt/slideLayouts/slideLayout1.xml": "<not-valid-xml",
		"ppt/slideLayouts/slideLayout2.xml": layoutXML("Good", shape(2, "title", "")),
	}, true)

	tmpl, err := OpenReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	if tmpl.LayoutCount() != 1 {
		t.Fatalf("LayoutCount() = %d, want the one parseable layout", tmpl.LayoutCount())
	}
	if got := tmpl.Layouts()[0].Name; got != "Good" {
		t.Errorf("surviving layout = %q", got)
	}
}

func TestOpenFromDisk(t *testing.T) {
	data := buildTemplate(t, map[string]string{
		"ppt/slideLayouts/slideLayout1.xml": layoutXML("Title", shape(2, "ctrTitle", "")),
	}, true)

	path := filepath.Join(t.TempDir(), "test.pptx")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tmpl, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if tmpl.LayoutCount() != 1 {
		t.Errorf("LayoutCount() = %d, want 1", tmpl.LayoutCount())
	}
}

func TestCatalogFromTemplate(t *testing.T) {
	data := buildTemplate(t, map[string]string{
		"ppt/slideLayouts/slideLayout1.xml": layoutXML("Title Slide",
			shape(2, "ctrTitle", "")+shape(3, "subTitle", "1")),
		"ppt/slideLayouts/slideLayout2.xml": layoutXML("Title and Content",
			shape(2, "title", "")+shape(3, "", "1")),
	}, true)

	tmpl, err := OpenReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}

	catalog, err := tmpl.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", catalog.Len())
	}
	if got := catalog.Title().Name; got != "Title Slide" {
		t.Errorf("Title().Name = %q", got)
	}
	if got := catalog.At(1).Role; got != template.RoleContent {
		t.Errorf("second layout role = %v, want content", got)
	}
}
