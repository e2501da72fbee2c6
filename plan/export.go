package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/slidecraft/slidecraft/template"
)

// ExportFormat defines the available plan export formats.
type ExportFormat int

const (
	// ExportFormatJSON exports the whole plan as one JSON object.
	ExportFormatJSON ExportFormat = iota
	// ExportFormatJSONL exports one JSON object per assignment.
	ExportFormatJSONL
	// ExportFormatMarkdown exports a human-readable deck outline.
	ExportFormatMarkdown
)

// String returns a human-readable representation of the export format.
func (ef ExportFormat) String() string {
	switch ef {
	case ExportFormatJSON:
		return "json"
	case ExportFormatJSONL:
		return "jsonl"
	case ExportFormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format.
func (ef ExportFormat) FileExtension() string {
	switch ef {
	case ExportFormatJSON:
		return ".json"
	case ExportFormatJSONL:
		return ".jsonl"
	case ExportFormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// ParseExportFormat parses a format name as used on the command line.
func ParseExportFormat(name string) (ExportFormat, error) {
	switch strings.ToLower(name) {
	case "json":
		return ExportFormatJSON, nil
	case "jsonl":
		return ExportFormatJSONL, nil
	case "markdown", "md":
		return ExportFormatMarkdown, nil
	default:
		return ExportFormatJSON, fmt.Errorf("plan: unknown export format %q", name)
	}
}

// Export writes the plan to w in the given format.
func (p *Plan) Export(w io.Writer, format ExportFormat) error {
	switch format {
	case ExportFormatJSON:
		return p.exportJSON(w)
	case ExportFormatJSONL:
		return p.exportJSONL(w)
	case ExportFormatMarkdown:
		return p.exportMarkdown(w)
	default:
		return fmt.Errorf("plan: unsupported export format %v", format)
	}
}

// ExportToFile writes the plan to a file in the given format.
func (p *Plan) ExportToFile(filename string, format ExportFormat) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()
	return p.Export(f, format)
}

// ToJSON returns the plan as indented JSON.
func (p *Plan) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

func (p *Plan) exportJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (p *Plan) exportJSONL(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, a := range p.Assignments {
		if err := enc.Encode(a); err != nil {
			return err
		}
	}
	return nil
}

// exportMarkdown renders the plan as a deck outline, one section per
// slide with its layout and bound text.
func (p *Plan) exportMarkdown(w io.Writer) error {
	var sb strings.Builder

	for i, a := range p.Assignments {
		if i > 0 {
			sb.WriteString("\n---\n\n")
		}
		sb.WriteString(fmt.Sprintf("<!-- slide %d: layout %q (%s) -->\n", a.Index, a.Layout.Name, a.Layout.Role))

		for _, b := range a.Bindings {
			switch b.Slot.Role {
			case template.SlotTitle:
				for _, para := range b.Paragraphs {
					sb.WriteString("# ")
					sb.WriteString(para.Text)
					sb.WriteString("\n\n")
				}
			default:
				for _, para := range b.Paragraphs {
					for j := 0; j < para.Level; j++ {
						sb.WriteString("  ")
					}
					sb.WriteString("- ")
					sb.WriteString(para.Text)
					sb.WriteString("\n")
				}
			}
		}
	}

	if len(p.Warnings) > 0 {
		sb.WriteString("\n<!-- warnings: ")
		sb.WriteString(FormatWarnings(p.Warnings))
		sb.WriteString(" -->\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
