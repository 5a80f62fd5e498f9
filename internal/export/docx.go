package export

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"
)

// renderDocx maps markdown heading levels to sized bold runs and keeps
// everything else as plain paragraphs.
func renderDocx(brdMarkdown string) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	for _, line := range strings.Split(brdMarkdown, "\n") {
		para := doc.AddParagraph()
		switch {
		case strings.HasPrefix(line, "# "):
			para.AddText(strings.TrimPrefix(line, "# ")).Size("36").Bold()
		case strings.HasPrefix(line, "## "):
			para.AddText(strings.TrimPrefix(line, "## ")).Size("30").Bold()
		case strings.HasPrefix(line, "### "):
			para.AddText(strings.TrimPrefix(line, "### ")).Size("26").Bold()
		case line == "":
			// keep the blank paragraph for spacing
		default:
			para.AddText(line)
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
