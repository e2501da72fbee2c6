package template

import (
	"errors"
	"strings"
)

// Role is the classified purpose of a layout.
type Role int

const (
	// RoleTitle is a title slide layout.
	RoleTitle Role = iota
	// RoleContent is a plain title-and-body layout.
	RoleContent
	// RolePicture is a layout built around a picture placeholder.
	RolePicture
	// RoleComparison is a side-by-side comparison layout.
	RoleComparison
	// RoleSection is a section header layout.
	RoleSection
	// RoleOther is any layout that fits no other role.
	RoleOther
)

// String returns a human-readable representation of the role.
func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleContent:
		return "content"
	case RolePicture:
		return "picture"
	case RoleComparison:
		return "comparison"
	case RoleSection:
		return "section"
	case RoleOther:
		return "other"
	default:
		return "unknown"
	}
}

// SlotRole tags what a placeholder slot holds.
type SlotRole int

const (
	// SlotTitle is a title placeholder.
	SlotTitle SlotRole = iota
	// SlotSubtitle is a subtitle placeholder.
	SlotSubtitle
	// SlotBody is a body text placeholder.
	SlotBody
	// SlotChrome is a footer, date, slide-number, or header
	// placeholder. Chrome slots never receive record content.
	SlotChrome
)

// String returns a human-readable representation of the slot role.
func (sr SlotRole) String() string {
	switch sr {
	case SlotTitle:
		return "title"
	case SlotSubtitle:
		return "subtitle"
	case SlotBody:
		return "body"
	case SlotChrome:
		return "chrome"
	default:
		return "unknown"
	}
}

// SlotHandle is an opaque, stable identifier for a placeholder slot,
// meaningful to the template source and the rendering backend.
type SlotHandle string

// Placeholder is one slot on a layout.
type Placeholder struct {
	Role   SlotRole   `json:"role"`
	Handle SlotHandle `json:"handle"`
}

// Layout is one layout as exposed by a template source.
type Layout struct {
	Name         string
	Placeholders []Placeholder
}

// Source exposes the ordered layout list of a presentation template.
type Source interface {
	Layouts() []Layout
}

// LayoutDescriptor is a classified layout in the catalog.
type LayoutDescriptor struct {
	// ID is the layout's position in template order.
	ID int `json:"id"`

	// Name is the layout's name in the template.
	Name string `json:"name"`

	// Role is the classified semantic role.
	Role Role `json:"role"`

	// Slots are the layout's placeholders in template order.
	Slots []Placeholder `json:"slots"`
}

// SlotCount returns the number of placeholder slots on the layout.
func (d LayoutDescriptor) SlotCount() int {
	return len(d.Slots)
}

// TitleSlot returns the first title slot, if any.
func (d LayoutDescriptor) TitleSlot() (Placeholder, bool) {
	return d.firstSlot(func(p Placeholder) bool { return p.Role == SlotTitle })
}

// SubtitleSlot returns the first subtitle slot, if any.
func (d LayoutDescriptor) SubtitleSlot() (Placeholder, bool) {
	return d.firstSlot(func(p Placeholder) bool { return p.Role == SlotSubtitle })
}

// FirstContentSlot returns the first slot that can receive body text:
// the first non-title, non-chrome placeholder in template order.
func (d LayoutDescriptor) FirstContentSlot() (Placeholder, bool) {
	return d.firstSlot(func(p Placeholder) bool {
		return p.Role != SlotTitle && p.Role != SlotChrome
	})
}

func (d LayoutDescriptor) firstSlot(match func(Placeholder) bool) (Placeholder, bool) {
	for _, p := range d.Slots {
		if match(p) {
			return p, true
		}
	}
	return Placeholder{}, false
}

// Config holds the name tokens and limits used to classify layouts.
type Config struct {
	// TitleTokens mark a layout name as a title layout.
	TitleTokens []string

	// PictureTokens mark a picture layout.
	PictureTokens []string

	// ComparisonTokens mark a comparison layout.
	ComparisonTokens []string

	// SectionTokens mark a section header layout.
	SectionTokens []string

	// MaxContentSlots is the placeholder count limit for the content
	// heuristic.
	MaxContentSlots int
}

// DefaultConfig returns the default classification configuration.
func DefaultConfig() Config {
	return Config{
		TitleTokens:      []string{"title", "タイトル"},
		PictureTokens:    []string{"picture", "pic", "図", "写真"},
		ComparisonTokens: []string{"comparison", "比較"},
		SectionTokens:    []string{"section", "セクション"},
		MaxContentSlots:  3,
	}
}

// Catalog construction errors.
var (
	// ErrNoLayouts reports a template exposing zero layouts.
	ErrNoLayouts = errors.New("template: template has no layouts")

	// ErrNoPlaceholders reports a template with no placeholders of any
	// role on any layout.
	ErrNoPlaceholders = errors.New("template: no placeholders on any layout")
)

// Catalog is an immutable, classified snapshot of a template's layouts.
type Catalog struct {
	layouts []LayoutDescriptor
	byRole  map[Role][]int
}

// Build snapshots and classifies a template source with the default
// configuration. It fails fast on a template that cannot host any
// content: zero layouts, or zero placeholders across all layouts.
func Build(src Source) (*Catalog, error) {
	return BuildWithConfig(src, DefaultConfig())
}

// BuildWithConfig snapshots and classifies a template source.
func BuildWithConfig(src Source, config Config) (*Catalog, error) {
	layouts := src.Layouts()
	if len(layouts) == 0 {
		return nil, ErrNoLayouts
	}

	slotTotal := 0
	for _, l := range layouts {
		slotTotal += len(l.Placeholders)
	}
	if slotTotal == 0 {
		return nil, ErrNoPlaceholders
	}

	c := &Catalog{
		layouts: make([]LayoutDescriptor, 0, len(layouts)),
		byRole:  make(map[Role][]int),
	}

	hasTitle := false
	for i, l := range layouts {
		role := ClassifyLayout(l, config)
		if role == RoleTitle {
			hasTitle = true
		}
		slots := make([]Placeholder, len(l.Placeholders))
		copy(slots, l.Placeholders)
		c.layouts = append(c.layouts, LayoutDescriptor{
			ID:    i,
			Name:  l.Name,
			Role:  role,
			Slots: slots,
		})
	}

	// Guarantee a title-capable layout.
	if !hasTitle {
		c.layouts[0].Role = RoleTitle
	}

	for i, d := range c.layouts {
		c.byRole[d.Role] = append(c.byRole[d.Role], i)
	}
	return c, nil
}

// ClassifyLayout assigns a semantic role to a layout. The predicates
// run in priority order; the first match wins:
//
//  1. Name contains a title token: title.
//  2. Exactly one title placeholder and at most MaxContentSlots
//     placeholders in total: content.
//  3. Name contains a picture token: picture.
//  4. Name contains a comparison token: comparison.
//  5. Name contains a section token: section.
//  6. Otherwise: other.
func ClassifyLayout(l Layout, config Config) Role {
	name := strings.ToLower(l.Name)

	if containsAny(name, config.TitleTokens) {
		return RoleTitle
	}

	titleSlots := 0
	for _, p := range l.Placeholders {
		if p.Role == SlotTitle {
			titleSlots++
		}
	}
	if titleSlots == 1 && len(l.Placeholders) <= config.MaxContentSlots {
		return RoleContent
	}

	if containsAny(name, config.PictureTokens) {
		return RolePicture
	}
	if containsAny(name, config.ComparisonTokens) {
		return RoleComparison
	}
	if containsAny(name, config.SectionTokens) {
		return RoleSection
	}
	return RoleOther
}

func containsAny(name string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(name, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

// Len returns the number of layouts in the catalog.
func (c *Catalog) Len() int {
	return len(c.layouts)
}

// At returns the layout at the given template-order index.
func (c *Catalog) At(i int) LayoutDescriptor {
	return c.layouts[i]
}

// Layouts returns all layouts in template order.
func (c *Catalog) Layouts() []LayoutDescriptor {
	out := make([]LayoutDescriptor, len(c.layouts))
	copy(out, c.layouts)
	return out
}

// Title returns the first title-role layout. Build guarantees one
// exists.
func (c *Catalog) Title() LayoutDescriptor {
	return c.layouts[c.byRole[RoleTitle][0]]
}

// ByRole returns every layout classified with the given role, in
// template order.
func (c *Catalog) ByRole(role Role) []LayoutDescriptor {
	idxs := c.byRole[role]
	out := make([]LayoutDescriptor, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, c.layouts[i])
	}
	return out
}

// NonTitle returns every layout whose role is not title, in template
// order. These are the overflow allocation candidates.
func (c *Catalog) NonTitle() []LayoutDescriptor {
	out := make([]LayoutDescriptor, 0, len(c.layouts))
	for _, d := range c.layouts {
		if d.Role != RoleTitle {
			out = append(out, d)
		}
	}
	return out
}
