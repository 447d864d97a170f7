package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renotools/renovation-extractor/constants"
)

type stubCompleter struct {
	output     string
	err        error
	lastPrompt string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.output, s.err
}

func TestExtractDetailsValidJSONPassesThrough(t *testing.T) {
	stub := &stubCompleter{output: `{
		"ProjectName": "Oak St Remodel",
		"ClientName": "Jane Doe",
		"PropertyAddress": "12 Oak St",
		"ProjectManager": "Sam Lee",
		"RenovationAreas": ["Kitchen", "Bath"],
		"ScopeOfWork": "Full gut renovation",
		"MaterialPreferences": ["Quartz", "Oak"],
		"BudgetOrCost": "$50,000",
		"Timeline": "Q3 start",
		"AdditionalNotes": "Permit required"
	}`}
	e := NewExtractor(stub, nil)

	result, err := e.ExtractDetails(context.Background(), "some transcript")
	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.Empty(t, result.RawOutput)

	// Keys and values pass through uninterpreted, list values included.
	assert.Equal(t, "Oak St Remodel", result.Details["ProjectName"])
	assert.Equal(t, []any{"Kitchen", "Bath"}, result.Details["RenovationAreas"])
	assert.Len(t, result.Details, len(constants.FieldNames))
}

func TestExtractDetailsTrimsResponseWhitespace(t *testing.T) {
	stub := &stubCompleter{output: "\n\n  {\"ProjectName\": \"Oak St Remodel\"}  \n"}
	e := NewExtractor(stub, nil)

	result, err := e.ExtractDetails(context.Background(), "t")
	require.NoError(t, err)
	assert.False(t, result.Fallback)
	assert.Equal(t, "Oak St Remodel", result.Details["ProjectName"])
}

func TestExtractDetailsInvalidJSONFallsBack(t *testing.T) {
	raw := "Sure, here's the info: the project is called Oak St Remodel."
	stub := &stubCompleter{output: raw}
	e := NewExtractor(stub, nil)

	result, err := e.ExtractDetails(context.Background(), "t")
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.Equal(t, raw, result.RawOutput)
	require.Len(t, result.Details, len(constants.FieldNames))
	for _, name := range constants.FieldNames {
		assert.Equal(t, constants.NotProvided, result.Details[name], "field %s", name)
	}
}

func TestExtractDetailsNonObjectJSONFallsBack(t *testing.T) {
	// Valid JSON that is not an object still takes the fallback branch.
	for _, output := range []string{`["a", "b"]`, `"just a string"`, `42`} {
		e := NewExtractor(&stubCompleter{output: output}, nil)
		result, err := e.ExtractDetails(context.Background(), "t")
		require.NoError(t, err)
		assert.True(t, result.Fallback, "output %s", output)
	}
}

func TestExtractDetailsCompleterErrorPropagates(t *testing.T) {
	wantErr := errors.New("connection refused")
	e := NewExtractor(&stubCompleter{err: wantErr}, nil)

	_, err := e.ExtractDetails(context.Background(), "t")
	assert.ErrorIs(t, err, wantErr)
}

func TestExtractDetailsSendsBuiltPrompt(t *testing.T) {
	stub := &stubCompleter{output: `{}`}
	e := NewExtractor(stub, nil)

	_, err := e.ExtractDetails(context.Background(), "normalized transcript text")
	require.NoError(t, err)
	assert.True(t, strings.Contains(stub.lastPrompt, "normalized transcript text"))
	assert.Equal(t, BuildPrompt("normalized transcript text"), stub.lastPrompt)
}

func TestFallbackDetailsCoversAllFields(t *testing.T) {
	details := FallbackDetails()
	require.Len(t, details, len(constants.FieldNames))
	for _, name := range constants.FieldNames {
		assert.Equal(t, constants.NotProvided, details[name])
	}
}
