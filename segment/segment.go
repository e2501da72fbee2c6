package segment

import (
	"errors"
	"strings"

	"golang.org/x/text/width"

	"github.com/slidecraft/slidecraft/deck"
)

// ErrEmptyInput is returned by pipeline callers when segmentation of an
// empty or whitespace-only text produced no records. Segment itself is
// total and simply returns an empty sequence in that case.
var ErrEmptyInput = errors.New("segment: input text is empty")

// Config holds configuration options for the segmenter.
type Config struct {
	// Markers are case-insensitive line prefixes that open a new titled
	// record. The text after the first colon becomes the title.
	Markers []string

	// BulletGlyphs are the runes that mark a line as a bullet point.
	BulletGlyphs []rune

	// SentenceTerminators are the runes that end a sentence when prose
	// is split into points.
	SentenceTerminators []rune

	// DefaultTitle is used when a bullet point appears before any
	// record has been opened.
	DefaultTitle string

	// FoldWidth normalizes full-width forms (colons, spaces, ASCII
	// variants) before matching. Half-width katakana is widened.
	FoldWidth bool
}

// DefaultConfig returns the default segmenter configuration.
func DefaultConfig() Config {
	return Config{
		Markers:             []string{"slide:", "theme:", "スライド:", "テーマ:"},
		BulletGlyphs:        []rune{'-', '*', '・', '•'},
		SentenceTerminators: []rune{'。', '．', '.', '!', '?'},
		DefaultTitle:        "内容",
		FoldWidth:           true,
	}
}

// Segmenter converts raw text into slide records.
type Segmenter struct {
	config Config
}

// New creates a segmenter with the default configuration.
func New() *Segmenter {
	return &Segmenter{config: DefaultConfig()}
}

// NewWithConfig creates a segmenter with a custom configuration.
func NewWithConfig(config Config) *Segmenter {
	return &Segmenter{config: config}
}

// Segment splits text into ordered slide records. Density is left
// unclassified on every record. Empty or whitespace-only input yields
// an empty sequence; callers treat that as a validation failure.
func (s *Segmenter) Segment(text string) []deck.Record {
	text = normalizeNewlines(text)
	if s.config.FoldWidth {
		text = width.Fold.String(text)
	}

	var out []deck.Record
	var cur *deck.Record

	open := func(title string) {
		if cur != nil {
			out = append(out, *cur)
		}
		cur = &deck.Record{Title: title}
	}

	for _, lines := range splitBlocks(text) {
		first := lines[0]

		if title, ok := s.matchMarker(first); ok {
			open(title)
			s.appendContent(cur, lines[1:])
			continue
		}

		if _, ok := s.stripGlyph(first); ok {
			// Bullet-led block: points belong to the open record.
			if cur == nil {
				open(s.config.DefaultTitle)
			}
			s.appendContent(cur, lines)
			continue
		}

		if cur == nil || s.blockHasBullet(lines) {
			// A prose line heads a new record when nothing is open, or
			// when the block carries its own bullets.
			open(first)
			s.appendContent(cur, lines[1:])
			continue
		}

		s.appendContent(cur, lines)
	}

	if cur != nil {
		out = append(out, *cur)
	}
	return out
}

// appendContent adds block lines to rec: glyph lines as single points,
// prose lines split into sentence points.
func (s *Segmenter) appendContent(rec *deck.Record, lines []string) {
	for _, line := range lines {
		if point, ok := s.stripGlyph(line); ok {
			if point != "" {
				rec.Points = append(rec.Points, point)
			}
			continue
		}
		rec.Points = append(rec.Points, s.SplitSentences(line)...)
	}
}

// matchMarker reports whether line begins with a recognized marker and
// returns the trimmed text after the first colon.
func (s *Segmenter) matchMarker(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, m := range s.config.Markers {
		if strings.HasPrefix(lower, strings.ToLower(m)) {
			return strings.TrimSpace(line[len(m):]), true
		}
	}
	return "", false
}

// stripGlyph reports whether line starts with a bullet glyph and
// returns the point text with the glyph and surrounding space removed.
func (s *Segmenter) stripGlyph(line string) (string, bool) {
	runes := []rune(line)
	if len(runes) == 0 {
		return "", false
	}
	for _, g := range s.config.BulletGlyphs {
		if runes[0] == g {
			return strings.TrimSpace(string(runes[1:])), true
		}
	}
	return "", false
}

// blockHasBullet reports whether any line in the block is a bullet line.
func (s *Segmenter) blockHasBullet(lines []string) bool {
	for _, line := range lines {
		if _, ok := s.stripGlyph(line); ok {
			return true
		}
	}
	return false
}

// SplitSentences splits prose into sentences at terminator runes,
// keeping each terminator attached to its sentence. Runs of consecutive
// terminators stay together.
func (s *Segmenter) SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])
		if !s.isTerminator(runes[i]) {
			continue
		}
		// Gobble consecutive terminators.
		for i+1 < len(runes) && s.isTerminator(runes[i+1]) {
			i++
			current.WriteRune(runes[i])
		}
		if sentence := strings.TrimSpace(current.String()); sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	if remaining := strings.TrimSpace(current.String()); remaining != "" {
		sentences = append(sentences, remaining)
	}
	return sentences
}

func (s *Segmenter) isTerminator(r rune) bool {
	for _, t := range s.config.SentenceTerminators {
		if r == t {
			return true
		}
	}
	return false
}

// splitBlocks splits text into blank-line separated blocks, each a
// slice of trimmed non-empty lines. Blocks with no content are dropped.
func splitBlocks(text string) [][]string {
	var blocks [][]string
	var block []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(block) > 0 {
				blocks = append(blocks, block)
				block = nil
			}
			continue
		}
		block = append(block, line)
	}
	if len(block) > 0 {
		blocks = append(blocks, block)
	}
	return blocks
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
