package deck

import "unicode/utf8"

// DensityClass governs how much text fits on one slide. The sizing
// engine assigns a class to every record; the class's character budget
// drives pagination.
type DensityClass int

const (
	// DensityUnclassified is the zero value for records that have not
	// been through the sizing engine yet.
	DensityUnclassified DensityClass = iota
	// DensityLarge uses large type and fits few characters per slide.
	DensityLarge
	// DensityMedium is the balanced default.
	DensityMedium
	// DensitySmall uses small type and fits the most characters per slide.
	DensitySmall
)

// String returns a human-readable representation of the density class.
func (dc DensityClass) String() string {
	switch dc {
	case DensityUnclassified:
		return "unclassified"
	case DensityLarge:
		return "large"
	case DensityMedium:
		return "medium"
	case DensitySmall:
		return "small"
	default:
		return "unknown"
	}
}

// Budget returns the default character budget per slide for the class.
// Budgets count runes, not bytes, so CJK text is measured the same way
// as Latin text. Unclassified records get the medium budget.
func (dc DensityClass) Budget() int {
	switch dc {
	case DensityLarge:
		return 100
	case DensitySmall:
		return 300
	default:
		return 200
	}
}

// Record is the structured form of one slide: a title and its bullet
// points in reading order.
type Record struct {
	// Title is the slide heading. May be empty for marker paragraphs
	// with no text after the colon.
	Title string `json:"title"`

	// Points are the slide's bullet points in original reading order.
	Points []string `json:"points,omitempty"`

	// Density is set by the sizing engine; DensityUnclassified before.
	Density DensityClass `json:"density"`
}

// TotalChars returns the total rune count across all points.
func (r Record) TotalChars() int {
	total := 0
	for _, p := range r.Points {
		total += utf8.RuneCountInString(p)
	}
	return total
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := Record{
		Title:   r.Title,
		Density: r.Density,
	}
	if r.Points != nil {
		out.Points = make([]string, len(r.Points))
		copy(out.Points, r.Points)
	}
	return out
}
