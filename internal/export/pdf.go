package export

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
)

// renderPDF draws the markdown line by line on Letter pages, truncating
// lines at 110 characters.
func renderPDF(brdMarkdown string) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(40, 40, 40)
	pdf.SetAutoPageBreak(true, 40)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, line := range strings.Split(brdMarkdown, "\n") {
		runes := []rune(line)
		if len(runes) > 110 {
			runes = runes[:110]
		}
		pdf.CellFormat(0, 14, tr(string(runes)), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
