package ingest

import (
	"bytes"
	"fmt"
	"os"

	"github.com/slidecraft/slidecraft/format"
	"github.com/slidecraft/slidecraft/ocr"
)

// FromFile reads a source document and converts it to marker-format
// text. The format is detected from the filename extension, falling
// back to content sniffing when the extension is unrecognized. Image
// inputs go through OCR, which requires a binary built with the "ocr"
// tag.
func FromFile(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("ingest: reading %s: %w", filename, err)
	}

	f := format.Detect(filename)
	if f == format.Unknown {
		f = format.DetectFromContent(data)
	}
	return FromBytes(data, f)
}

// FromBytes converts content bytes of a known format to marker-format
// text.
func FromBytes(data []byte, f format.Format) (string, error) {
	switch f {
	case format.Text:
		return Text(data)
	case format.Markdown:
		return Markdown(data)
	case format.HTML:
		return HTML(bytes.NewReader(data))
	case format.Image:
		return Image(data)
	case format.PPTX:
		return "", fmt.Errorf("ingest: PPTX files are templates, not source documents")
	default:
		return "", fmt.Errorf("ingest: unsupported input format %s", f)
	}
}

// Image runs OCR over image data and normalizes the recognized text.
// The OCR engine only exists in builds with the "ocr" tag; otherwise
// this returns ocr.ErrOCRNotEnabled.
func Image(data []byte) (string, error) {
	client, err := ocr.New()
	if err != nil {
		return "", err
	}
	defer client.Close()

	text, err := client.RecognizeImage(data)
	if err != nil {
		return "", fmt.Errorf("ingest: recognizing image: %w", err)
	}
	return Text([]byte(text))
}
