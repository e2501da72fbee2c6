package ingest

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Text normalizes plain text input: a leading UTF-8 BOM is stripped
// and CRLF/CR line endings become LF. The marker dialect passes
// through untouched.
func Text(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return "", fmt.Errorf("ingest: input is not valid UTF-8")
	}

	s := string(data)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s, nil
}
