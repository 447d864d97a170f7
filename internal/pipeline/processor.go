package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/renotools/renovation-extractor/internal/export"
	"github.com/renotools/renovation-extractor/internal/extract"
	"github.com/renotools/renovation-extractor/internal/llm"
)

// Processor runs the whole transcript pipeline: extract text, normalize,
// extract details through the completion service, render the workbook.
// Strictly sequential, no state carried between invocations.
type Processor struct {
	text     extract.TextExtractor
	fields   *llm.Extractor
	renderer *export.Renderer
	log      *slog.Logger
}

func NewProcessor(text extract.TextExtractor, fields *llm.Extractor, renderer *export.Renderer, log *slog.Logger) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{text: text, fields: fields, renderer: renderer, log: log}
}

// ProcessTranscript is the pipeline's single entry point: transcript bytes
// plus the declared extension in, extraction result plus workbook bytes
// out. Either a full Result (real or fallback) and a full artifact are
// produced, or an error and nothing.
func (p *Processor) ProcessTranscript(ctx context.Context, data []byte, ext string) (llm.Result, []byte, error) {
	start := time.Now()
	p.log.Info("pipeline.run.start", "ext", ext, "bytes", len(data))

	extracted, err := p.text.Extract(ctx, data, ext)
	if err != nil {
		return llm.Result{}, nil, err
	}

	normalized := extract.NormalizeText(extracted.Text)

	result, err := p.fields.ExtractDetails(ctx, normalized)
	if err != nil {
		return llm.Result{}, nil, err
	}

	artifact, err := p.renderer.RenderXLSX(result.Details)
	if err != nil {
		return llm.Result{}, nil, fmt.Errorf("render spreadsheet: %w", err)
	}

	p.log.Info("pipeline.run.ok",
		"ext", ext,
		"fallback", result.Fallback,
		"artifact_bytes", len(artifact),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, artifact, nil
}
