package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDFText pulls text page by page in document order. A page that
// yields no text contributes an empty string; pages are joined with
// newlines. The pdf library can panic on malformed input, so the whole
// walk runs under a recover that converts panics into errors.
func extractPDFText(data []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}

	pages = reader.NumPage()
	var b strings.Builder
	for i := 1; i <= pages; i++ {
		pageText := ""
		page := reader.Page(i)
		if !page.V.IsNull() {
			if content, perr := page.GetPlainText(nil); perr == nil {
				pageText = content
			}
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}
	return b.String(), pages, nil
}
