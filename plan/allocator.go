package plan

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/slidecraft/slidecraft/deck"
	"github.com/slidecraft/slidecraft/template"
)

// AssignmentKind distinguishes the title slide from content slides.
type AssignmentKind int

const (
	// KindTitle is the deck's opening title slide.
	KindTitle AssignmentKind = iota
	// KindContent is a slide generated from a sized record.
	KindContent
)

// String returns a human-readable representation of the kind.
func (k AssignmentKind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindContent:
		return "content"
	default:
		return "unknown"
	}
}

// Paragraph is one paragraph-level text unit bound into a slot.
type Paragraph struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// FieldBinding maps one placeholder slot to its text content.
type FieldBinding struct {
	Slot       template.Placeholder `json:"slot"`
	Paragraphs []Paragraph          `json:"paragraphs"`
}

// Assignment binds one output slide to a layout and its text fields.
type Assignment struct {
	// Index is the slide's position in the final deck, 0-based.
	Index int `json:"index"`

	// Kind is title or content.
	Kind AssignmentKind `json:"kind"`

	// Record is the sized record behind a content assignment; nil for
	// the title assignment.
	Record *deck.Record `json:"record,omitempty"`

	// Layout is the chosen template layout.
	Layout template.LayoutDescriptor `json:"layout"`

	// Bindings hold the slot-to-text field mappings, in slot order.
	Bindings []FieldBinding `json:"bindings"`
}

// Plan is the ordered slide assignment plan for one deck.
type Plan struct {
	// Title is the presentation title.
	Title string `json:"title"`

	// Assignments are the output slides in final presentation order.
	Assignments []Assignment `json:"assignments"`

	// Warnings are the recoverable issues found while allocating.
	Warnings []Warning `json:"warnings,omitempty"`
}

// Renderer materializes assignments into an output document. The
// concrete backend (and its file format) is outside this package.
type Renderer interface {
	AddSlide(a Assignment) error
}

// Render walks the assignments in order, handing each to the renderer.
func (p *Plan) Render(r Renderer) error {
	for _, a := range p.Assignments {
		if err := r.AddSlide(a); err != nil {
			return fmt.Errorf("rendering slide %d: %w", a.Index, err)
		}
	}
	return nil
}

// Config holds configuration options for the allocator.
type Config struct {
	// Rand supplies the randomness for overflow layout selection. When
	// nil, a time-seeded source is created per allocation run.
	Rand *rand.Rand

	// Now supplies the timestamp for the title slide's subtitle. When
	// nil, time.Now is used.
	Now func() time.Time

	// DateFormat formats the subtitle timestamp.
	DateFormat string

	// LegacySilentDrop suppresses the warning when a record's points
	// are dropped because its layout has no body slot, replicating the
	// historical behavior.
	LegacySilentDrop bool
}

// DefaultConfig returns the default allocator configuration.
func DefaultConfig() Config {
	return Config{
		DateFormat: "2006-01-02",
	}
}

// Allocator builds slide assignment plans against one layout catalog.
// The catalog is read-only; one allocator may serve concurrent Build
// calls as long as a Rand source is not shared between them.
type Allocator struct {
	catalog *template.Catalog
	config  Config
}

// New creates an allocator with the default configuration.
func New(catalog *template.Catalog) *Allocator {
	return NewWithConfig(catalog, DefaultConfig())
}

// NewWithConfig creates an allocator with a custom configuration.
func NewWithConfig(catalog *template.Catalog, config Config) *Allocator {
	if config.DateFormat == "" {
		config.DateFormat = "2006-01-02"
	}
	return &Allocator{catalog: catalog, config: config}
}

// Build produces the assignment plan for a deck: a title slide followed
// by one slide per sized record, in order.
func (a *Allocator) Build(title string, records []deck.Record) (*Plan, error) {
	if a.catalog == nil || a.catalog.Len() == 0 {
		return nil, errors.New("plan: allocator has no layout catalog")
	}

	p := &Plan{
		Title:       title,
		Assignments: make([]Assignment, 0, len(records)+1),
	}

	p.Assignments = append(p.Assignments, a.titleAssignment(title))

	n := a.catalog.Len()
	rng := a.config.Rand
	for i := range records {
		rec := records[i].Clone()

		var layout template.LayoutDescriptor
		if i < n-1 {
			layout = a.catalog.At((i + 1) % n)
		} else {
			// Template capacity exhausted: draw uniformly from the
			// non-title candidates.
			candidates := a.catalog.NonTitle()
			if len(candidates) == 0 {
				layout = a.catalog.At((i + 1) % n)
			} else {
				if rng == nil {
					rng = rand.New(rand.NewSource(time.Now().UnixNano()))
				}
				layout = candidates[rng.Intn(len(candidates))]
			}
		}

		asg := Assignment{
			Index:  len(p.Assignments),
			Kind:   KindContent,
			Record: &rec,
			Layout: layout,
		}

		if slot, ok := layout.TitleSlot(); ok {
			asg.Bindings = append(asg.Bindings, FieldBinding{
				Slot:       slot,
				Paragraphs: []Paragraph{{Text: rec.Title}},
			})
		}

		if len(rec.Points) > 0 {
			if slot, ok := layout.FirstContentSlot(); ok {
				paras := make([]Paragraph, 0, len(rec.Points))
				for _, pt := range rec.Points {
					paras = append(paras, Paragraph{Text: pt, Level: 0})
				}
				asg.Bindings = append(asg.Bindings, FieldBinding{
					Slot:       slot,
					Paragraphs: paras,
				})
			} else if !a.config.LegacySilentDrop {
				p.Warnings = append(p.Warnings, Warning{
					Kind:            WarnBodySlotMissing,
					AssignmentIndex: asg.Index,
					Message: fmt.Sprintf("layout %q has no body slot; %d point(s) dropped",
						layout.Name, len(rec.Points)),
				})
			}
		}

		p.Assignments = append(p.Assignments, asg)
	}

	return p, nil
}

// titleAssignment builds the deck's opening slide on the catalog's
// title layout.
func (a *Allocator) titleAssignment(title string) Assignment {
	layout := a.catalog.Title()
	asg := Assignment{
		Index:  0,
		Kind:   KindTitle,
		Layout: layout,
	}

	if slot, ok := layout.TitleSlot(); ok {
		asg.Bindings = append(asg.Bindings, FieldBinding{
			Slot:       slot,
			Paragraphs: []Paragraph{{Text: title}},
		})
	}

	if slot, ok := layout.SubtitleSlot(); ok {
		now := time.Now
		if a.config.Now != nil {
			now = a.config.Now
		}
		asg.Bindings = append(asg.Bindings, FieldBinding{
			Slot: slot,
			Paragraphs: []Paragraph{{
				Text: fmt.Sprintf("Created on %s", now().Format(a.config.DateFormat)),
			}},
		})
	}

	return asg
}
