package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Extractor turns normalized transcript text into ProjectDetails through a
// single blocking completion call. No retries, no rate-limit handling: a
// network or service failure propagates to the caller. A response that is
// not a JSON object is recovered locally into the fallback record.
type Extractor struct {
	completer Completer
	log       *slog.Logger
}

func NewExtractor(completer Completer, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{completer: completer, log: log}
}

// ExtractDetails builds the prompt, issues one completion request, and
// parses the response. The parsed object is returned as-is with no key
// validation or type coercion; that happens later at render time.
func (e *Extractor) ExtractDetails(ctx context.Context, text string) (Result, error) {
	rid := uuid.New().String()
	start := time.Now()

	e.log.Info("llm.extract.start", "req_id", rid, "text_len", len(text))

	raw, err := e.completer.Complete(ctx, BuildPrompt(text))
	if err != nil {
		e.log.Error("llm.extract.complete_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{}, fmt.Errorf("completion request: %w", err)
	}

	content := strings.TrimSpace(raw)
	var details ProjectDetails
	if err := json.Unmarshal([]byte(content), &details); err != nil {
		e.log.Warn("llm.extract.parse_failed",
			"req_id", rid, "error", err, "raw_output", content,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{Details: FallbackDetails(), Fallback: true, RawOutput: content}, nil
	}

	e.log.Info("llm.extract.ok",
		"req_id", rid, "keys", len(details),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Details: details}, nil
}
