package extract

import (
	"context"
	"time"
)

// TextExtractor turns transcript bytes into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, ext string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // "DOCX" | "PDF"
	Method     string // "docx-text" | "pdf-text"
	Duration   time.Duration
}
