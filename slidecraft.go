// Package slidecraft provides a fluent API for compiling natural-language
// text into slide assignment plans against a PPTX template.
//
// Basic usage:
//
//	p, warnings, err := slidecraft.FromFile("notes.md").
//	    Template("theme.pptx").
//	    Plan()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", slidecraft.FormatWarnings(warnings))
//	}
//
// With options:
//
//	p, _, err := slidecraft.FromText(source).
//	    Template("theme.pptx").
//	    Title("Quarterly Review").
//	    Seed(42).
//	    Plan()
//
// For advanced use cases, the lower-level segment, sizing, template, and
// plan packages are also available.
package slidecraft

import (
	"github.com/slidecraft/slidecraft/deck"
	"github.com/slidecraft/slidecraft/plan"
)

// Warning is a recoverable issue reported by a terminal operation.
type Warning = plan.Warning

// FormatWarnings joins warnings into a single printable string.
func FormatWarnings(warnings []Warning) string {
	return plan.FormatWarnings(warnings)
}

// FromText creates a Compiler over marker-format source text.
//
// Example:
//
//	p, warnings, err := slidecraft.FromText(source).Template("theme.pptx").Plan()
func FromText(text string) *Compiler {
	return &Compiler{
		source:  sourceText,
		text:    text,
		options: defaultOptions(),
	}
}

// FromFile creates a Compiler over a source document file. The format
// is detected from the extension (plain text, Markdown, HTML, or an
// image for OCR-enabled builds) and converted to marker-format text
// when a terminal operation runs.
//
// Example:
//
//	p, warnings, err := slidecraft.FromFile("notes.md").Template("theme.pptx").Plan()
func FromFile(filename string) *Compiler {
	return &Compiler{
		source:   sourceFile,
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromRecords creates a Compiler over already-segmented records,
// skipping the segmentation stage. The records are cloned so later
// mutations by the caller do not leak into the compilation.
func FromRecords(records []deck.Record) *Compiler {
	cloned := make([]deck.Record, len(records))
	for i := range records {
		cloned[i] = records[i].Clone()
	}
	return &Compiler{
		source:  sourceRecords,
		records: cloned,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustPlan is a helper that wraps a terminal call like Plan() or
// Records() and panics if the error is non-nil. It discards warnings
// and returns just the value. It is intended for use in scripts or
// tests where error handling would be cumbersome.
//
// Example:
//
//	p := slidecraft.MustPlan(slidecraft.FromText(src).Template("theme.pptx").Plan())
func MustPlan[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
