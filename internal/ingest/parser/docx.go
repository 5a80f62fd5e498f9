package parser

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"
)

func readDocx(content []byte) string {
	doc, err := docx.Parse(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "DOCX content could not be parsed."
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok {
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(para.String())
		}
	}
	return sb.String()
}
