package sizing

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/slidecraft/slidecraft/deck"
)

// Reason explains which classifier rule chose a record's density class.
type Reason int

const (
	// ReasonSummaryTitle fired the summary/short-title rule.
	ReasonSummaryTitle Reason = iota
	// ReasonLongPoints fired the long-average-point rule.
	ReasonLongPoints
	// ReasonDefault means no earlier rule matched.
	ReasonDefault
)

// String returns a human-readable representation of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonSummaryTitle:
		return "summary_title"
	case ReasonLongPoints:
		return "long_points"
	case ReasonDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Config holds configuration options for the sizing engine.
type Config struct {
	// SummaryMarkers are substrings that mark a title as a summary or
	// overview slide. Matching is case-insensitive.
	SummaryMarkers []string

	// ShortTitleMax is the maximum title length, in runes, for the
	// summary rule to fire.
	ShortTitleMax int

	// LongPointAvg is the average runes per point at or above which a
	// record is classified small.
	LongPointAvg int

	// Budgets overrides the per-class character budgets. Classes absent
	// from the map use the deck defaults.
	Budgets map[deck.DensityClass]int
}

// DefaultConfig returns the default sizing configuration.
func DefaultConfig() Config {
	return Config{
		SummaryMarkers: []string{"まとめ", "概要", "summary", "overview"},
		ShortTitleMax:  10,
		LongPointAvg:   50,
	}
}

// Engine classifies and paginates slide records.
type Engine struct {
	config Config
}

// New creates a sizing engine with the default configuration.
func New() *Engine {
	return &Engine{config: DefaultConfig()}
}

// NewWithConfig creates a sizing engine with a custom configuration.
func NewWithConfig(config Config) *Engine {
	return &Engine{config: config}
}

// Budget returns the character budget for a class, honoring overrides.
func (e *Engine) Budget(class deck.DensityClass) int {
	if b, ok := e.config.Budgets[class]; ok && b > 0 {
		return b
	}
	return class.Budget()
}

// Classify decides the density class for a record.
func (e *Engine) Classify(r deck.Record) deck.DensityClass {
	class, _ := e.ClassifyWithReason(r)
	return class
}

// ClassifyWithReason decides the density class and reports which rule
// fired. Rules are evaluated in priority order; the first match wins:
//
//  1. Title carries a summary marker and is at most ShortTitleMax runes
//     long: large.
//  2. Points average at least LongPointAvg runes each: small.
//  3. Otherwise: medium.
func (e *Engine) ClassifyWithReason(r deck.Record) (deck.DensityClass, Reason) {
	if e.isSummaryTitle(r.Title) {
		return deck.DensityLarge, ReasonSummaryTitle
	}
	if n := len(r.Points); n > 0 {
		if float64(r.TotalChars())/float64(n) >= float64(e.config.LongPointAvg) {
			return deck.DensitySmall, ReasonLongPoints
		}
	}
	return deck.DensityMedium, ReasonDefault
}

func (e *Engine) isSummaryTitle(title string) bool {
	if utf8.RuneCountInString(title) > e.config.ShortTitleMax {
		return false
	}
	lower := strings.ToLower(title)
	for _, m := range e.config.SummaryMarkers {
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// Size classifies every record and splits those exceeding their budget.
// The output preserves record order; derived records replace their
// original in place.
func (e *Engine) Size(records []deck.Record) []deck.Record {
	out := make([]deck.Record, 0, len(records))
	for _, r := range records {
		out = append(out, e.sizeRecord(r)...)
	}
	return out
}

// sizeRecord classifies one record and paginates it against its budget.
func (e *Engine) sizeRecord(r deck.Record) []deck.Record {
	class := e.Classify(r)
	budget := e.Budget(class)

	total := r.TotalChars()
	if total == 0 {
		rec := r.Clone()
		rec.Density = class
		return []deck.Record{rec}
	}

	needed := (total + budget - 1) / budget
	if needed <= 1 {
		rec := r.Clone()
		rec.Density = class
		return []deck.Record{rec}
	}

	perSlide := (len(r.Points) + needed - 1) / needed
	out := make([]deck.Record, 0, needed)
	for i, start := 0, 0; start < len(r.Points); i, start = i+1, start+perSlide {
		end := start + perSlide
		if end > len(r.Points) {
			end = len(r.Points)
		}
		title := r.Title
		if i > 0 {
			title = fmt.Sprintf("%s (%d/%d)", r.Title, i+1, needed)
		}
		points := make([]string, end-start)
		copy(points, r.Points[start:end])
		out = append(out, deck.Record{Title: title, Points: points, Density: class})
	}
	return out
}
