package parser

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readWorkbook flattens every sheet to CSV-ish text.
func readWorkbook(content []byte) string {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "Spreadsheet content could not be parsed."
	}
	defer f.Close()

	var sb strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		for i, row := range rows {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(strings.Join(row, ","))
		}
	}
	return sb.String()
}
