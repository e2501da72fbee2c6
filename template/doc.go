// Package template classifies the layouts of a presentation template
// into semantic roles and exposes them as an immutable catalog.
//
// A [Source] supplies the ordered layout list of a template; the
// production implementation lives in the pptx package. [Build] takes a
// snapshot of the source, classifies every layout with a
// priority-ordered decision table, and guarantees at least one
// title-capable layout. The resulting [Catalog] is never mutated and is
// safe for concurrent reads across allocation runs.
package template
