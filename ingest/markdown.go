package ingest

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Markdown converts a Markdown document into marker-format text.
// Headings become "slide:" marker lines, list items become bullet
// lines, and paragraphs pass through as prose.
func Markdown(data []byte) (string, error) {
	src, err := Text(data)
	if err != nil {
		return "", err
	}
	source := []byte(src)

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var sb strings.Builder
	if err := walkMarkdown(&sb, doc, source); err != nil {
		return "", fmt.Errorf("ingest: converting markdown: %w", err)
	}
	return sb.String(), nil
}

func walkMarkdown(sb *strings.Builder, node ast.Node, source []byte) error {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Heading:
			writeBlock(sb, "slide: "+nodeText(n, source))
		case *ast.Paragraph:
			writeBlock(sb, nodeText(n, source))
		case *ast.List:
			var lines []string
			for item := n.FirstChild(); item != nil; item = item.NextSibling() {
				lines = append(lines, "- "+nodeText(item, source))
			}
			writeBlock(sb, strings.Join(lines, "\n"))
		case *ast.Blockquote, *ast.FencedCodeBlock, *ast.CodeBlock,
			*ast.ThematicBreak, *ast.HTMLBlock:
			// Not representable on a slide body; skipped.
		default:
			if err := walkMarkdown(sb, child, source); err != nil {
				return err
			}
		}
	}
	return nil
}

// nodeText collects the inline text under a block node, joining line
// segments with single spaces.
func nodeText(node ast.Node, source []byte) string {
	var parts []string
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			parts = append(parts, string(t.Segment.Value(source)))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(strings.Join(parts, ""))
}

// writeBlock appends one block with a trailing blank line separator.
func writeBlock(sb *strings.Builder, block string) {
	block = strings.TrimSpace(block)
	if block == "" {
		return
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(block)
	sb.WriteString("\n")
}
