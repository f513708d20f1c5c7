package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls the plain text of every page. Rows are joined per page;
// the library does not preserve visual line breaks reliably, so downstream
// heuristics treat pages as line groups.
func extractPDF(raw []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var builder strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", pageNum, err)
		}
		for _, row := range rows {
			var line strings.Builder
			for _, word := range row.Content {
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(word.S)
			}
			text := strings.TrimSpace(line.String())
			if text != "" {
				builder.WriteString(text)
				builder.WriteByte('\n')
			}
		}
	}
	return builder.String(), nil
}
