//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStubReturnsNotEnabled(t *testing.T) {
	if _, err := New(); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("New() error = %v, want ErrOCRNotEnabled", err)
	}

	var c *Client
	if err := c.Close(); err != nil {
		t.Errorf("Close() on nil client = %v", err)
	}

	client := &Client{}
	if _, err := client.RecognizeImage([]byte("x")); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeImage() error = %v, want ErrOCRNotEnabled", err)
	}
	if _, err := client.RecognizeFile("scan.png"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeFile() error = %v, want ErrOCRNotEnabled", err)
	}
	if err := client.SetLanguage("jpn"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetLanguage() error = %v, want ErrOCRNotEnabled", err)
	}
	if err := client.SetPageSegMode(PSM_AUTO); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetPageSegMode() error = %v, want ErrOCRNotEnabled", err)
	}
}
