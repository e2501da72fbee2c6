package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		img.Set(x, 0, color.Black)
	}
	return img
}

func TestNormalizeImagePassthrough(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	data := buf.Bytes()

	got, err := NormalizeImage(data)
	if err != nil {
		t.Fatalf("NormalizeImage() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("NormalizeImage() modified PNG data")
	}
}

func TestNormalizeImageConverts(t *testing.T) {
	encoders := map[string]func(*bytes.Buffer) error{
		"bmp": func(buf *bytes.Buffer) error {
			return bmp.Encode(buf, testImage())
		},
		"tiff": func(buf *bytes.Buffer) error {
			return tiff.Encode(buf, testImage(), nil)
		},
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encode(&buf); err != nil {
				t.Fatalf("encode error = %v", err)
			}

			got, err := NormalizeImage(buf.Bytes())
			if err != nil {
				t.Fatalf("NormalizeImage() error = %v", err)
			}
			if !bytes.HasPrefix(got, []byte("\x89PNG\r\n\x1a\n")) {
				t.Error("NormalizeImage() did not produce PNG output")
			}
			if _, err := png.Decode(bytes.NewReader(got)); err != nil {
				t.Errorf("converted output does not decode as PNG: %v", err)
			}
		})
	}
}
