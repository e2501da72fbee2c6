// Package plan builds the slide assignment plan: the ordered binding of
// sized slide records to template layouts.
//
// The allocator emits one title assignment, then one assignment per
// content record. While the template's native layout sequence lasts,
// assignment is a deterministic round-robin; beyond it, a layout is
// drawn uniformly at random from the non-title candidates. The random
// source is injectable so overflow behavior is reproducible under test.
//
// Recoverable issues, such as a record whose layout has no body slot,
// are collected as warnings on the plan rather than aborting the run.
package plan
