package llm

import (
	"context"

	"github.com/renotools/renovation-extractor/constants"
)

// ProjectDetails is the decoded JSON object returned by the model. Values
// are kept exactly as decoded; coercion to cell strings happens at render
// time.
type ProjectDetails map[string]any

// Completer is the narrow seam to the completion service: one prompt in,
// raw model text out. Tests substitute a deterministic stub.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Result tags whether Details came from the model or from the fallback
// record. RawOutput carries the unparseable model text for diagnostic
// display and is empty when Fallback is false.
type Result struct {
	Details   ProjectDetails
	Fallback  bool
	RawOutput string
}

// FallbackDetails returns the fixed record substituted when the model's
// output is not valid JSON: all ten fields set to "Not provided".
func FallbackDetails() ProjectDetails {
	details := make(ProjectDetails, len(constants.FieldNames))
	for _, name := range constants.FieldNames {
		details[name] = constants.NotProvided
	}
	return details
}
