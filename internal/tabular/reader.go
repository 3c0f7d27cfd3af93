// Package tabular parses uploaded CSV and spreadsheet files into a header row
// and a sequence of raw rows, independent of any business schema.
//
// Two families of formats are supported:
//
//   - Delimited text (.csv, .txt): comma or semicolon separated, sniffed from
//     the first line. Rows whose cells are all empty are dropped.
//   - Spreadsheets (.xlsx, .xlsm): first worksheet only, cached formula values.
//     Rows are dropped only when every cell is absent; a cell holding an empty
//     string keeps its row.
//
// Files are read fully into memory; there is no streaming mode.
package tabular

import (
	"path/filepath"
	"strings"
)

// Cell is one (header, value) pair of a raw row.
type Cell struct {
	Header string
	Value  string
}

// Row is an ordered sequence of cells, one per header column.
// Duplicate header labels keep their own cells, in column order.
type Row []Cell

// Get returns the value of the last cell labelled header.
func (r Row) Get(header string) (string, bool) {
	val, found := "", false
	for _, c := range r {
		if c.Header == header {
			val, found = c.Value, true
		}
	}
	return val, found
}

// Table is the parsed content of one file.
type Table struct {
	Headers []string
	Rows    []Row
}

// Format identifies a supported file family.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// formatsByExt maps lowercase extensions (without dot) to a file family.
var formatsByExt = map[string]Format{
	"csv":  FormatCSV,
	"txt":  FormatCSV,
	"xlsx": FormatXLSX,
	"xlsm": FormatXLSX,
}

// Extension returns the lowercase extension of filename without the dot.
func Extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// DetectFormat returns the file family for filename.
func DetectFormat(filename string) (Format, error) {
	ext := Extension(filename)
	if f, ok := formatsByExt[ext]; ok {
		return f, nil
	}
	return "", &UnsupportedFormatError{Extension: ext}
}

// Read parses data according to the extension of filename.
func Read(data []byte, filename string) (*Table, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatXLSX:
		return readXLSX(data)
	default:
		return readCSV(data)
	}
}

// makeRow pairs each header with the cell at the same position.
// Missing trailing cells default to "" and extra cells are ignored.
func makeRow(headers, cells []string) Row {
	row := make(Row, len(headers))
	for i, h := range headers {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		row[i] = Cell{Header: h, Value: v}
	}
	return row
}
