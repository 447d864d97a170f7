package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/renotools/renovation-extractor/constants"
	"github.com/renotools/renovation-extractor/internal/llm"
)

// Renderer produces the two-row styled workbook for a ProjectDetails record.
type Renderer struct {
	log *slog.Logger
}

func NewRenderer(log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.Default()
	}
	return &Renderer{log: log}
}

// Header styling constants: bold white on solid blue, fixed column width
// and header row height, header row frozen so appended rows scroll under it.
const (
	headerFillColor = "4F81BD"
	columnWidth     = 25.0
	headerRowHeight = 25.0
)

// RenderXLSX writes the header row and one value row into a new workbook
// and serializes it to bytes. Values are looked up by the fixed field
// order; missing keys default to "Not provided" and lists are joined with
// ", " before writing.
func (r *Renderer) RenderXLSX(details llm.ProjectDetails) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.log.Warn("xlsx close error", "error", cerr)
		}
	}()

	const sheet = constants.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thin,
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	valueStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Vertical: "top",
			WrapText: true,
		},
		Border: thin,
	})
	if err != nil {
		return nil, fmt.Errorf("value style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(constants.FieldNames))
	if err != nil {
		return nil, err
	}

	for i, name := range constants.FieldNames {
		headerCell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, headerCell, name); err != nil {
			return nil, fmt.Errorf("write header %s: %w", name, err)
		}

		valueCell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		value, ok := details[name]
		if err := f.SetCellValue(sheet, valueCell, cellText(value, ok)); err != nil {
			return nil, fmt.Errorf("write value %s: %w", name, err)
		}
	}

	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A2", lastCol+"2", valueStyle); err != nil {
		return nil, fmt.Errorf("apply value style: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
		return nil, fmt.Errorf("set column widths: %w", err)
	}
	if err := f.SetRowHeight(sheet, 1, headerRowHeight); err != nil {
		return nil, fmt.Errorf("set header row height: %w", err)
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header row: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	r.log.Info("export.xlsx.ok",
		"columns", len(constants.FieldNames),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// cellText coerces a decoded JSON value to its cell representation. Lists
// join with ", "; absent, nil, or blank values become "Not provided";
// anything else gets its default string representation.
func cellText(v any, present bool) string {
	if !present || v == nil {
		return constants.NotProvided
	}
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return constants.NotProvided
		}
		return t
	case []string:
		return strings.Join(t, ", ")
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", t)
	}
}
