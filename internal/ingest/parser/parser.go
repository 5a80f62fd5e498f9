// Package parser extracts text from uploaded reference files. Extraction
// is extension-driven and degrades to placeholder text instead of
// rejecting the upload: a reference the analyst can see beats a 400.
package parser

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Result holds the extracted text and upload metadata for one file.
type Result struct {
	Text     string
	Metadata map[string]string
}

// Parse extracts text from the raw file content based on the filename
// extension. Unknown extensions are treated as plain text.
func Parse(filename string, content []byte) Result {
	suffix := strings.ToLower(filepath.Ext(filename))

	var text string
	switch suffix {
	case ".docx":
		text = readDocx(content)
	case ".pdf":
		text = readPDF(content)
	case ".ppt", ".pptx":
		text = readSlides(content)
	case ".xlsx", ".xls":
		text = readWorkbook(content)
	case ".csv":
		text = readCSV(content)
	case ".eml":
		text = readEmail(content)
	case ".msg":
		// Outlook OLE containers need a dedicated parser we don't carry.
		text = "MSG parser unavailable in current environment."
	default:
		text = plainText(content)
	}

	return Result{
		Text: text,
		Metadata: map[string]string{
			"filename": filename,
			"size":     strconv.Itoa(len(content)),
			"suffix":   suffix,
		},
	}
}

// readCSV keeps the first 50 lines verbatim as a sample.
func readCSV(content []byte) string {
	lines := strings.Split(plainText(content), "\n")
	if len(lines) > 50 {
		lines = lines[:50]
	}
	return strings.Join(lines, "\n")
}

func plainText(content []byte) string {
	return strings.ToValidUTF8(string(content), "")
}
