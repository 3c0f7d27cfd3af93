package importer

import (
	"strings"

	"github.com/JonMunkholm/assettrack/internal/tabular"
)

// Record is a canonical record: every schema field mapped to a string.
type Record map[string]string

// Build turns raw rows into canonical records. Every field starts as "" and
// each mapped cell overwrites it with its trimmed value, in column order, so
// a later column wins over an earlier one mapped to the same field. Exactly
// one record is produced per row; no row is filtered.
func Build(rows []tabular.Row, hm *HeaderMap, fields []string) []Record {
	records := make([]Record, 0, len(rows))

	for _, row := range rows {
		rec := make(Record, len(fields))
		for _, f := range fields {
			rec[f] = ""
		}

		for _, cell := range row {
			if field, ok := hm.Field(cell.Header); ok {
				rec[field] = strings.TrimSpace(cell.Value)
			}
		}

		records = append(records, rec)
	}

	return records
}
