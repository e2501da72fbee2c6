package plan

import (
	"fmt"
	"strings"
)

// WarningKind categorizes recoverable allocation issues.
type WarningKind int

const (
	// WarnBodySlotMissing reports a record whose points could not be
	// bound because the chosen layout has no body slot.
	WarnBodySlotMissing WarningKind = iota
)

// String returns a human-readable representation of the warning kind.
func (wk WarningKind) String() string {
	switch wk {
	case WarnBodySlotMissing:
		return "body_slot_missing"
	default:
		return "unknown"
	}
}

// Warning is a recoverable issue attached to one assignment. Warnings
// are collected on the plan and never abort an allocation run.
type Warning struct {
	// Kind categorizes the issue.
	Kind WarningKind `json:"kind"`

	// AssignmentIndex is the affected slide's position in the plan.
	AssignmentIndex int `json:"assignment_index"`

	// Message describes the issue.
	Message string `json:"message"`
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("slide %d: %s: %s", w.AssignmentIndex, w.Kind, w.Message)
}

// FormatWarnings joins warnings into a single printable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, "; ")
}
