// Package importer maps the columns of an uploaded table onto the canonical
// fields of an entity schema and materializes canonical records.
//
// Headers are compared after normalization (case, accents and punctuation
// removed) using an edit-distance ratio on a 0-100 scale. A header is used
// only when its best candidate scores at least the mapper threshold; other
// columns are ignored without error.
package importer

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/assettrack/internal/logging"
	"github.com/JonMunkholm/assettrack/internal/tabular"
)

// Importer chains the tabular reader, the header mapper and the record builder.
// The zero value uses DefaultThreshold.
type Importer struct {
	Threshold int
}

// Result is the full outcome of one import.
type Result struct {
	Headers   []string
	Records   []Record
	Unmapped  []string
	Conflicts []Conflict
}

// Import reads data and returns one canonical record per non-blank row.
// A file with a header but no data rows yields an empty slice and no error.
func (imp Importer) Import(ctx context.Context, data []byte, filename string, schema *Schema) ([]Record, error) {
	res, err := imp.Run(ctx, data, filename, schema)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// Run is Import with the mapping diagnostics kept.
func (imp Importer) Run(ctx context.Context, data []byte, filename string, schema *Schema) (*Result, error) {
	table, err := tabular.Read(data, filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	mapper := NewMapper(schema, imp.Threshold)
	hm := mapper.MapHeaders(table.Headers)

	logger := logging.FromContext(ctx)
	for _, h := range hm.Unmapped() {
		logger.Debug("ignoring unmapped column", "file", filename, "header", h)
	}

	res := &Result{
		Headers:   table.Headers,
		Records:   Build(table.Rows, hm, schema.Names()),
		Unmapped:  hm.Unmapped(),
		Conflicts: hm.Conflicts(),
	}

	logger.Debug("file mapped",
		"file", filename,
		"columns", len(table.Headers),
		"mapped", hm.Len(),
		"rows", len(res.Records),
	)

	return res, nil
}

// Analyze reads data and reports how each header column scores against
// schema, without building records.
func (imp Importer) Analyze(ctx context.Context, data []byte, filename string, schema *Schema) ([]HeaderMatch, error) {
	table, err := tabular.Read(data, filename)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	return NewMapper(schema, imp.Threshold).Analyze(table.Headers), nil
}
