// Package segment turns free-form text into an ordered sequence of
// slide records.
//
// The segmenter works on blank-line separated blocks. A block opened by
// a marker line ("slide:" or "theme:", English or Japanese, ASCII or
// full-width colon) starts a new titled record. Lines beginning with a
// bullet glyph become individual points. Prose lines either title a new
// record or are split into sentence points, depending on whether a
// record is already open.
//
// All matching is performed after Unicode width folding, so full-width
// colons, spaces, and glyph variants behave like their ASCII
// counterparts. Character counts everywhere in the pipeline are rune
// counts.
package segment
