package main

import (
	"strings"
	"testing"

	"github.com/slidecraft/slidecraft/deck"
	"github.com/slidecraft/slidecraft/plan"
	"github.com/slidecraft/slidecraft/template"
)

type fakeSource struct {
	layouts []template.Layout
}

func (f *fakeSource) Layouts() []template.Layout {
	return f.layouts
}

func testCatalog(t *testing.T) *template.Catalog {
	t.Helper()
	catalog, err := template.Build(&fakeSource{layouts: []template.Layout{
		{
			Name: "Title Slide",
			Placeholders: []template.Placeholder{
				{Role: template.SlotTitle, Handle: "ctrTitle:0"},
				{Role: template.SlotSubtitle, Handle: "subTitle:1"},
			},
		},
		{
			Name: "Body Layout",
			Placeholders: []template.Placeholder{
				{Role: template.SlotTitle, Handle: "title:0"},
				{Role: template.SlotBody, Handle: "body:1"},
			},
		},
	}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return catalog
}

func TestRenderPlanTable(t *testing.T) {
	catalog := testCatalog(t)

	p, err := plan.New(catalog).Build("Demo", []deck.Record{
		{Title: "Topic", Points: []string{"a", "b"}, Density: deck.DensityMedium},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	out := renderPlanTable(p)
	for _, want := range []string{"Kind", "Layout", "title", "content", "Topic", "Body Layout"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCatalogTable(t *testing.T) {
	out := renderCatalogTable(testCatalog(t))
	for _, want := range []string{"Role", "Title Slide", "Body Layout", "body:1", "subTitle:1"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
