package format

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"notes.txt", Text},
		{"notes.TEXT", Text},
		{"readme.md", Markdown},
		{"readme.markdown", Markdown},
		{"page.html", HTML},
		{"page.htm", HTML},
		{"scan.png", Image},
		{"scan.JPG", Image},
		{"scan.tiff", Image},
		{"scan.bmp", Image},
		{"theme.pptx", PPTX},
		{"data.bin", Unknown},
		{"noextension", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestDetectFromContent(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"empty", nil, Unknown},
		{"png magic", []byte("\x89PNG\r\n\x1a\nrest"), Image},
		{"jpeg magic", []byte{0xFF, 0xD8, 0xFF, 0xE0}, Image},
		{"tiff little-endian", []byte("II*\x00data"), Image},
		{"tiff big-endian", []byte("MM\x00*data"), Image},
		{"bmp magic", []byte("BMdata"), Image},
		{"doctype html", []byte("<!DOCTYPE html><html></html>"), HTML},
		{"html tag with leading whitespace", []byte("\n  <html><body></body></html>"), HTML},
		{"markdown heading", []byte("# Title\n\nbody"), Markdown},
		{"markdown fence", []byte("```go\ncode\n```"), Markdown},
		{"markdown bullets", []byte("- one\n- two\n"), Markdown},
		{"single bullet is plain text", []byte("- just one line"), Text},
		{"prose", []byte("just some prose about slides"), Text},
		{"japanese prose", []byte("はじめに\nこれは最初のスライドです。"), Text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromContent(tt.data); got != tt.want {
				t.Errorf("DetectFromContent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func zipWith(t *testing.T, names ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
		if _, err := w.Write([]byte("x")); err != nil {
			t.Fatalf("Write(%s): %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}
	return buf.Bytes()
}

func TestDetectFromContentZip(t *testing.T) {
	pptxData := zipWith(t, "[Content_Types].xml", "ppt/presentation.xml")
	if got := DetectFromContent(pptxData); got != PPTX {
		t.Errorf("DetectFromContent(pptx zip) = %v, want PPTX", got)
	}

	otherZip := zipWith(t, "word/document.xml")
	if got := DetectFromContent(otherZip); got != Unknown {
		t.Errorf("DetectFromContent(other zip) = %v, want Unknown", got)
	}
}

func TestDetectFromReader(t *testing.T) {
	pptxData := zipWith(t, "[Content_Types].xml", "ppt/presentation.xml")
	got, err := DetectFromReader(bytes.NewReader(pptxData), int64(len(pptxData)))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if got != PPTX {
		t.Errorf("DetectFromReader(pptx) = %v, want PPTX", got)
	}

	text := []byte("plain old text content")
	got, err = DetectFromReader(bytes.NewReader(text), int64(len(text)))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if got != Text {
		t.Errorf("DetectFromReader(text) = %v, want Text", got)
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Text, "Text"},
		{Markdown, "Markdown"},
		{HTML, "HTML"},
		{Image, "Image"},
		{PPTX, "PPTX"},
		{Unknown, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
