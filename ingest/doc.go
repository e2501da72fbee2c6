// Package ingest converts source documents into the marker-format
// plain text the segmenter consumes.
//
// Each ingester emits lines in the compiler's input dialect: "slide:"
// marker lines for headings, "- " bullet lines for list items, and
// bare prose lines for paragraphs, with blank lines between blocks.
// Plain text passes through with newline and BOM normalization only.
package ingest
