package tabular

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var errNoSheets = errors.New("workbook has no sheets")

// readXLSX parses the first worksheet of a workbook. Row 1 is the header even
// when blank. Cells yield their stored value without number formatting, so a
// formula gives its cached result and a date its serial number.
func readXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &MalformedFileError{Format: FormatXLSX, Err: err}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &MalformedFileError{Format: FormatXLSX, Err: errNoSheets}
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &MalformedFileError{Format: FormatXLSX, Err: fmt.Errorf("read sheet %q: %w", sheet, err)}
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	headers := rows[0]
	table := &Table{Headers: headers}
	for i, cells := range rows[1:] {
		rowNum := i + 2
		if isEmptyRecord(cells) && !hasStoredCell(f, sheet, rowNum, max(len(headers), len(cells))) {
			continue
		}
		table.Rows = append(table.Rows, makeRow(headers, cells))
	}
	return table, nil
}

// hasStoredCell reports whether any of the first width cells of rowNum holds
// a value of its own, as opposed to being absent from the sheet. Only called
// for rows whose values are all empty, so an unset type means "no value".
func hasStoredCell(f *excelize.File, sheet string, rowNum, width int) bool {
	for col := 1; col <= width; col++ {
		axis, err := excelize.CoordinatesToCellName(col, rowNum)
		if err != nil {
			return false
		}
		typ, err := f.GetCellType(sheet, axis)
		if err != nil {
			continue
		}
		if typ != excelize.CellTypeUnset {
			return true
		}
	}
	return false
}
