package slidecraft

import (
	"github.com/slidecraft/slidecraft/segment"
	"github.com/slidecraft/slidecraft/sizing"
	"github.com/slidecraft/slidecraft/template"
)

// compileOptions holds configuration for one compilation chain.
type compileOptions struct {
	// Presentation title; empty means derive from the first record.
	title string

	// Template source (exactly one of these is used)
	templateFile   string
	templateSource template.Source
	catalog        *template.Catalog

	// Stage configuration overrides (nil means package defaults)
	segmentConfig  *segment.Config
	sizingConfig   *sizing.Config
	templateConfig *template.Config

	// Allocation options
	seed             *int64
	dateFormat       string
	legacySilentDrop bool
}

// defaultOptions returns the default compile options.
func defaultOptions() compileOptions {
	return compileOptions{}
}

// clone creates a deep copy of compileOptions.
func (o compileOptions) clone() compileOptions {
	newOpts := o

	if o.segmentConfig != nil {
		cfg := *o.segmentConfig
		newOpts.segmentConfig = &cfg
	}
	if o.sizingConfig != nil {
		cfg := *o.sizingConfig
		newOpts.sizingConfig = &cfg
	}
	if o.templateConfig != nil {
		cfg := *o.templateConfig
		newOpts.templateConfig = &cfg
	}
	if o.seed != nil {
		seed := *o.seed
		newOpts.seed = &seed
	}

	return newOpts
}
