// Package format provides input format detection for the slidecraft
// library.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Text indicates plain text content.
	Text
	// Markdown indicates Markdown content.
	Markdown
	// HTML indicates an HTML document.
	HTML
	// Image indicates a raster image destined for OCR.
	Image
	// PPTX indicates a Microsoft PowerPoint (.pptx) template.
	PPTX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "Text"
	case Markdown:
		return "Markdown"
	case HTML:
		return "HTML"
	case Image:
		return "Image"
	case PPTX:
		return "PPTX"
	default:
		return "Unknown"
	}
}

// Extension returns the canonical file extension for the format,
// including the dot, or the empty string for Unknown.
func (f Format) Extension() string {
	switch f {
	case Text:
		return ".txt"
	case Markdown:
		return ".md"
	case HTML:
		return ".html"
	case Image:
		return ".png"
	case PPTX:
		return ".pptx"
	default:
		return ""
	}
}

// Detect determines the format of a file from its extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".text":
		return Text
	case ".md", ".markdown":
		return Markdown
	case ".html", ".htm":
		return HTML
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".bmp":
		return Image
	case ".pptx":
		return PPTX
	default:
		return Unknown
	}
}

// DetectFromContent determines the format by inspecting content bytes.
// Anything not recognizably an image, ZIP archive, HTML, or Markdown is
// treated as plain text.
func DetectFromContent(data []byte) Format {
	if len(data) == 0 {
		return Unknown
	}

	if isImage(data) {
		return Image
	}

	// ZIP magic. A PPTX is a ZIP archive with a ppt/ part inside.
	if len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		if isPPTXArchive(bytes.NewReader(data), int64(len(data))) {
			return PPTX
		}
		return Unknown
	}

	if isHTML(data) {
		return HTML
	}
	if isMarkdown(data) {
		return Markdown
	}
	return Text
}

// DetectFromReader determines the format by inspecting content through
// r. For ZIP archives the full reader is consulted so the member list
// can be examined.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	n := size
	if n > 4096 {
		n = 4096
	}
	head := make([]byte, n)
	read, err := r.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	head = head[:read]

	if len(head) >= 4 && head[0] == 0x50 && head[1] == 0x4B && head[2] == 0x03 && head[3] == 0x04 {
		if isPPTXArchive(r, size) {
			return PPTX, nil
		}
		return Unknown, nil
	}
	return DetectFromContent(head), nil
}

// isImage checks for the common raster image signatures.
func isImage(data []byte) bool {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return true
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return true // JPEG
	case bytes.HasPrefix(data, []byte("II*\x00")) || bytes.HasPrefix(data, []byte("MM\x00*")):
		return true // TIFF
	case len(data) >= 2 && data[0] == 'B' && data[1] == 'M':
		return true // BMP
	}
	return false
}

// isHTML checks whether the data starts like an HTML document.
func isHTML(data []byte) bool {
	trimmed := strings.TrimLeft(string(head(data, 512)), " \t\r\n")
	upper := strings.ToUpper(trimmed)
	return strings.HasPrefix(upper, "<!DOCTYPE HTML") ||
		strings.HasPrefix(upper, "<HTML") ||
		(strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML"))
}

// isMarkdown applies a structural heuristic: an ATX heading or code
// fence decides immediately, otherwise two or more bullet lines do.
func isMarkdown(data []byte) bool {
	bullets := 0
	for _, line := range strings.Split(string(head(data, 2048)), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "# "),
			strings.HasPrefix(trimmed, "## "),
			strings.HasPrefix(trimmed, "### "),
			strings.HasPrefix(trimmed, "```"):
			return true
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			bullets++
		}
	}
	return bullets >= 2
}

// isPPTXArchive checks whether a ZIP archive contains a ppt/ part.
func isPPTXArchive(r io.ReaderAt, size int64) bool {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/") {
			return true
		}
	}
	return false
}

func head(data []byte, n int) []byte {
	return data[:min(n, len(data))]
}
