package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/renotools/renovation-extractor/constants"
	"github.com/renotools/renovation-extractor/internal/common"
)

// DocumentExtractor dispatches on the declared file extension to the
// format-specific leaf extractors. Text-only, best-effort: no OCR, no
// layout reconstruction, whatever the underlying parser yields.
type DocumentExtractor struct {
	log *slog.Logger
}

func NewDocumentExtractor(log *slog.Logger) *DocumentExtractor {
	if log == nil {
		log = slog.Default()
	}
	return &DocumentExtractor{log: log}
}

func (e *DocumentExtractor) Extract(ctx context.Context, data []byte, ext string) (TextExtractionResult, error) {
	start := time.Now()
	format := constants.MapExtToFormat(ext)
	if format == "" {
		return TextExtractionResult{}, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, ext)
	}
	if err := ctx.Err(); err != nil {
		return TextExtractionResult{}, err
	}

	var (
		text   string
		pages  int
		method string
		err    error
	)
	switch format {
	case constants.FormatDOCX:
		method = "docx-text"
		text, pages, err = extractDOCXText(data)
	case constants.FormatPDF:
		method = "pdf-text"
		text, pages, err = extractPDFText(data)
	}
	if err != nil {
		e.log.Error("extract.failed", "format", format, "bytes", len(data), "error", err)
		return TextExtractionResult{}, fmt.Errorf("extract %s text: %w", format, err)
	}

	res := TextExtractionResult{
		Text:       text,
		Pages:      pages,
		SourceType: format,
		Method:     method,
		Duration:   time.Since(start),
	}
	e.log.Info("extract.ok",
		"format", format,
		"bytes", len(data),
		"text_len", len(text),
		"pages", pages,
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
