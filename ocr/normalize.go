package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/jpeg"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// NormalizeImage converts TIFF and BMP image data to PNG so the OCR
// engine sees a format it always supports. PNG and JPEG data passes
// through unchanged.
func NormalizeImage(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		img, err := tiff.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding TIFF image: %w", err)
		}
		return encodePNG(img)
	case len(data) >= 2 && data[0] == 'B' && data[1] == 'M':
		img, err := bmp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding BMP image: %w", err)
		}
		return encodePNG(img)
	default:
		return data, nil
	}
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG image: %w", err)
	}
	return buf.Bytes(), nil
}
