// Package sizing classifies slide records by visual density and splits
// records whose text exceeds their class's character budget.
//
// Classification is a priority-ordered decision table: summary-style
// short titles read large, records whose points average many characters
// read small, and everything else reads medium. Each class carries a
// per-slide character budget; a record over budget is paginated into
// derived records whose points are contiguous chunks of the original.
//
// The derived records always partition the original's points exactly,
// in order, with no duplication or loss. A single point is never split
// across slides, even when it alone exceeds the budget.
package sizing
