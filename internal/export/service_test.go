package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/renotools/renovation-extractor/constants"
	"github.com/renotools/renovation-extractor/internal/llm"
)

func fullDetails() llm.ProjectDetails {
	return llm.ProjectDetails{
		"ProjectName":         "Oak St Remodel",
		"ClientName":          "Jane Doe",
		"PropertyAddress":     "12 Oak St",
		"ProjectManager":      "Sam Lee",
		"RenovationAreas":     []any{"Kitchen", "Bath"},
		"ScopeOfWork":         "Full gut renovation",
		"MaterialPreferences": []any{"Quartz", "Oak"},
		"BudgetOrCost":        "$50,000",
		"Timeline":            "Q3 start",
		"AdditionalNotes":     "Permit required",
	}
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestRenderXLSXShape(t *testing.T) {
	r := NewRenderer(nil)
	data, err := r.RenderXLSX(fullDetails())
	require.NoError(t, err)

	f := openWorkbook(t, data)
	assert.Equal(t, []string{constants.SheetName}, f.GetSheetList())

	rows, err := f.GetRows(constants.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, constants.FieldNames, rows[0])
	assert.Len(t, rows[1], len(constants.FieldNames))
}

func TestRenderXLSXListJoin(t *testing.T) {
	r := NewRenderer(nil)
	data, err := r.RenderXLSX(fullDetails())
	require.NoError(t, err)

	f := openWorkbook(t, data)
	rows, err := f.GetRows(constants.SheetName)
	require.NoError(t, err)

	// RenovationAreas is the fifth column.
	assert.Equal(t, "Kitchen, Bath", rows[1][4])
	assert.Equal(t, "Quartz, Oak", rows[1][6])
}

func TestRenderXLSXMissingKeysDefault(t *testing.T) {
	r := NewRenderer(nil)
	data, err := r.RenderXLSX(llm.ProjectDetails{"ProjectName": "Oak St Remodel"})
	require.NoError(t, err)

	f := openWorkbook(t, data)
	rows, err := f.GetRows(constants.SheetName)
	require.NoError(t, err)

	assert.Equal(t, "Oak St Remodel", rows[1][0])
	for i := 1; i < len(constants.FieldNames); i++ {
		assert.Equal(t, constants.NotProvided, rows[1][i], "column %s", constants.FieldNames[i])
	}
}

func TestRenderXLSXEmptyDetails(t *testing.T) {
	r := NewRenderer(nil)
	data, err := r.RenderXLSX(llm.ProjectDetails{})
	require.NoError(t, err)

	f := openWorkbook(t, data)
	rows, err := f.GetRows(constants.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, cell := range rows[1] {
		assert.Equal(t, constants.NotProvided, cell)
	}
}

func TestRenderXLSXHeaderRowFrozen(t *testing.T) {
	r := NewRenderer(nil)
	data, err := r.RenderXLSX(fullDetails())
	require.NoError(t, err)

	f := openWorkbook(t, data)
	panes, err := f.GetPanes(constants.SheetName)
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, 1, panes.YSplit)
}

func TestCellText(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		present bool
		want    string
	}{
		{"missing key", nil, false, constants.NotProvided},
		{"nil value", nil, true, constants.NotProvided},
		{"blank string", "   ", true, constants.NotProvided},
		{"plain string", "Kitchen", true, "Kitchen"},
		{"string slice", []string{"Kitchen", "Bath"}, true, "Kitchen, Bath"},
		{"any slice", []any{"Kitchen", "Bath"}, true, "Kitchen, Bath"},
		{"number", 50000.0, true, "50000"},
		{"bool", true, true, "true"},
		{"nested object stringified", map[string]any{"a": 1}, true, "map[a:1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cellText(tt.value, tt.present))
		})
	}
}
