package slidecraft

import (
	"errors"
	"math/rand"

	"github.com/slidecraft/slidecraft/deck"
	"github.com/slidecraft/slidecraft/ingest"
	"github.com/slidecraft/slidecraft/plan"
	"github.com/slidecraft/slidecraft/pptx"
	"github.com/slidecraft/slidecraft/segment"
	"github.com/slidecraft/slidecraft/sizing"
	"github.com/slidecraft/slidecraft/template"
)

// sourceKind identifies where a compilation chain gets its input.
type sourceKind int

const (
	sourceText sourceKind = iota
	sourceFile
	sourceRecords
)

// Compiler provides a fluent interface for turning source text into a
// slide assignment plan. Each configuration method returns a new
// Compiler instance, making it safe for concurrent use and allowing
// shared chain prefixes.
type Compiler struct {
	// Source
	source   sourceKind
	text     string
	filename string
	records  []deck.Record

	// Configuration
	options compileOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Compiler with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (c *Compiler) clone() *Compiler {
	return &Compiler{
		source:   c.source,
		text:     c.text,
		filename: c.filename,
		records:  c.records,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// Template sets the PPTX template file whose layouts the plan is built
// against.
func (c *Compiler) Template(filename string) *Compiler {
	newC := c.clone()
	newC.options.templateFile = filename
	newC.options.templateSource = nil
	newC.options.catalog = nil
	return newC
}

// TemplateSource sets an already-opened layout source, such as a
// *pptx.Template, in place of a template file.
func (c *Compiler) TemplateSource(src template.Source) *Compiler {
	newC := c.clone()
	newC.options.templateFile = ""
	newC.options.templateSource = src
	newC.options.catalog = nil
	return newC
}

// Catalog sets a pre-built layout catalog, bypassing template reading
// and classification entirely.
func (c *Compiler) Catalog(catalog *template.Catalog) *Compiler {
	newC := c.clone()
	newC.options.templateFile = ""
	newC.options.templateSource = nil
	newC.options.catalog = catalog
	return newC
}

// Title sets the presentation title. When unset, the first record's
// title is used.
func (c *Compiler) Title(title string) *Compiler {
	newC := c.clone()
	newC.options.title = title
	return newC
}

// Seed fixes the random source used when content records outnumber
// template layouts, making overflow layout selection reproducible.
func (c *Compiler) Seed(seed int64) *Compiler {
	newC := c.clone()
	newC.options.seed = &seed
	return newC
}

// DateFormat sets the time layout used for the title slide's generated
// "Created on" subtitle. When unset, dates format as 2006-01-02.
func (c *Compiler) DateFormat(layout string) *Compiler {
	newC := c.clone()
	newC.options.dateFormat = layout
	return newC
}

// Segmenter overrides the segmentation configuration.
func (c *Compiler) Segmenter(cfg segment.Config) *Compiler {
	newC := c.clone()
	newC.options.segmentConfig = &cfg
	return newC
}

// Sizing overrides the sizing configuration.
func (c *Compiler) Sizing(cfg sizing.Config) *Compiler {
	newC := c.clone()
	newC.options.sizingConfig = &cfg
	return newC
}

// Layouts overrides the layout classification configuration used when
// the catalog is built from a template.
func (c *Compiler) Layouts(cfg template.Config) *Compiler {
	newC := c.clone()
	newC.options.templateConfig = &cfg
	return newC
}

// LegacySilentDrop suppresses warnings for points dropped onto layouts
// without a body slot, replicating the historical behavior.
func (c *Compiler) LegacySilentDrop() *Compiler {
	newC := c.clone()
	newC.options.legacySilentDrop = true
	return newC
}

// Records runs segmentation and sizing and returns the sized records
// without allocating them to layouts. No template is required.
func (c *Compiler) Records() ([]deck.Record, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	records, err := c.sizedRecords()
	if err != nil {
		return nil, nil, err
	}
	return records, nil, nil
}

// Plan runs the full pipeline and returns the slide assignment plan:
// segmentation, sizing, template catalog construction, and allocation.
func (c *Compiler) Plan() (*plan.Plan, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	records, err := c.sizedRecords()
	if err != nil {
		return nil, nil, err
	}

	catalog, err := c.buildCatalog()
	if err != nil {
		return nil, nil, err
	}

	title := c.options.title
	if title == "" && len(records) > 0 {
		title = records[0].Title
	}

	cfg := plan.DefaultConfig()
	cfg.LegacySilentDrop = c.options.legacySilentDrop
	if c.options.dateFormat != "" {
		cfg.DateFormat = c.options.dateFormat
	}
	if c.options.seed != nil {
		cfg.Rand = rand.New(rand.NewSource(*c.options.seed))
	}

	p, err := plan.NewWithConfig(catalog, cfg).Build(title, records)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Warnings, nil
}

// sizedRecords produces the sized record sequence from whatever source
// the chain was created with.
func (c *Compiler) sizedRecords() ([]deck.Record, error) {
	records, err := c.segmented()
	if err != nil {
		return nil, err
	}

	eng := sizing.New()
	if c.options.sizingConfig != nil {
		eng = sizing.NewWithConfig(*c.options.sizingConfig)
	}
	return eng.Size(records), nil
}

// segmented produces the raw record sequence from the chain's source.
func (c *Compiler) segmented() ([]deck.Record, error) {
	if c.source == sourceRecords {
		if len(c.records) == 0 {
			return nil, segment.ErrEmptyInput
		}
		return c.records, nil
	}

	text := c.text
	if c.source == sourceFile {
		converted, err := ingest.FromFile(c.filename)
		if err != nil {
			return nil, err
		}
		text = converted
	}

	seg := segment.New()
	if c.options.segmentConfig != nil {
		seg = segment.NewWithConfig(*c.options.segmentConfig)
	}

	records := seg.Segment(text)
	if len(records) == 0 {
		return nil, segment.ErrEmptyInput
	}
	return records, nil
}

// buildCatalog resolves the chain's template option into a catalog.
func (c *Compiler) buildCatalog() (*template.Catalog, error) {
	if c.options.catalog != nil {
		return c.options.catalog, nil
	}

	src := c.options.templateSource
	if src == nil {
		if c.options.templateFile == "" {
			return nil, errors.New("slidecraft: no template specified; use Template, TemplateSource, or Catalog")
		}
		t, err := pptx.Open(c.options.templateFile)
		if err != nil {
			return nil, err
		}
		src = t
	}

	if c.options.templateConfig != nil {
		return template.BuildWithConfig(src, *c.options.templateConfig)
	}
	return template.Build(src)
}
