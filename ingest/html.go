package ingest

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTML converts an HTML document into marker-format text. Headings
// become "slide:" marker lines, list items become bullet lines, and
// paragraphs pass through as prose. Script and style content is
// skipped.
func HTML(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("ingest: parsing HTML: %w", err)
	}

	var sb strings.Builder
	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}
	walkHTML(&sb, body)
	return sb.String(), nil
}

// HTMLBytes converts HTML content bytes into marker-format text.
func HTMLBytes(data []byte) (string, error) {
	return HTML(bytes.NewReader(data))
}

func walkHTML(sb *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "head":
			return
		case "h1", "h2", "h3", "h4", "h5", "h6":
			writeBlock(sb, "slide: "+textContent(n))
			return
		case "p":
			writeBlock(sb, textContent(n))
			return
		case "ul", "ol":
			var lines []string
			collectListItems(n, &lines)
			writeBlock(sb, strings.Join(lines, "\n"))
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHTML(sb, c)
	}
}

// collectListItems gathers li text under a list element, flattening
// nested lists into the same block.
func collectListItems(n *html.Node, lines *[]string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "li" {
			if text := itemText(c); text != "" {
				*lines = append(*lines, "- "+text)
			}
			for g := c.FirstChild; g != nil; g = g.NextSibling {
				if g.Type == html.ElementNode && (g.Data == "ul" || g.Data == "ol") {
					collectListItems(g, lines)
				}
			}
		}
	}
}

// itemText extracts the li's own text, excluding nested lists.
func itemText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
			continue
		}
		sb.WriteString(textContent(c))
	}
	return normalizeSpace(sb.String())
}

// textContent extracts all text content from a node and its children.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return normalizeSpace(sb.String())
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// normalizeSpace collapses runs of whitespace to single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
