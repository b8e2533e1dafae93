package dataprocessing

import (
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "dataopscli/internal/errors"
	"dataopscli/pkg/contracts/domain"
)

// LoadWorkbook reads the first sheet of an .xlsx file into a table.
// The first non-empty row is the header. Cells are read as displayed, so
// dates formatted by the workbook go through the same timestamp layouts
// as CSV text.
func LoadWorkbook(path string, opts LoadOptions) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewIOError("failed to open workbook", err).WithContext("file", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("workbook has no sheets", nil).WithContext("file", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read sheet", err).
			WithContext("file", path).
			WithContext("sheet", sheets[0])
	}

	// Skip leading blank rows
	start := 0
	for start < len(rows) && isBlankRow(rows[start]) {
		start++
	}
	if start == len(rows) {
		return nil, apperrors.NewParsingError("sheet has no header row", nil).
			WithContext("file", path).
			WithContext("sheet", sheets[0])
	}

	header := rows[start]
	body := rows[start+1:]

	// GetRows trims trailing empty cells and rows; fields past the header are dropped
	trimmed := make([][]string, 0, len(body))
	for _, row := range body {
		if len(row) > len(header) {
			row = row[:len(header)]
		}
		trimmed = append(trimmed, row)
	}

	return buildTable(header, trimmed, opts)
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
