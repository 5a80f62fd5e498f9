package parser

import (
	"bytes"
	"io"

	"github.com/ledongthuc/pdf"
)

// readPDF extracts the plain text of every page. The pdf library panics
// on some malformed files, so recover turns those into the placeholder.
func readPDF(content []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = "PDF content could not be parsed."
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "PDF content could not be parsed."
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "PDF content could not be parsed."
	}
	raw, err := io.ReadAll(plain)
	if err != nil {
		return "PDF content could not be parsed."
	}
	return string(raw)
}
