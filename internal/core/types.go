package core

import (
	"strings"
	"time"

	"github.com/JonMunkholm/assettrack/internal/importer"
)

// EntityInfo contains display and storage information about an entity.
type EntityInfo struct {
	Key   string `json:"key"`   // Unique identifier: "licenses"
	Group string `json:"group"` // Menu group: "Pessoas", "Infraestrutura"
	Label string `json:"label"` // Display name: "Licenças"
	File  string `json:"file"`  // Collection name in the store: "licencas.json"
}

// AcceptFunc decides whether an imported record is kept.
type AcceptFunc func(importer.Record) bool

// EntityDefinition contains everything needed to manage one entity.
type EntityDefinition struct {
	Info EntityInfo

	// Fields are the editable fields of a record, in form order. Records
	// written through the service carry exactly these keys plus id.
	// Empty means any key is accepted.
	Fields []string

	// Schema maps file headers to fields on import. Nil disables import.
	Schema *importer.Schema

	// Accept filters imported records, typically on the business key.
	// Nil keeps every record.
	Accept AcceptFunc

	// Defaults are written into imported records whose value is missing
	// or empty.
	Defaults map[string]string
}

// Importable reports whether the entity has an import schema.
func (d EntityDefinition) Importable() bool {
	return d.Schema != nil
}

// RequireAny returns an AcceptFunc keeping records where at least one of
// fields is non-empty.
func RequireAny(fields ...string) AcceptFunc {
	return func(rec importer.Record) bool {
		for _, f := range fields {
			if strings.TrimSpace(rec[f]) != "" {
				return true
			}
		}
		return false
	}
}

// EntitySummary is the public view of a definition.
type EntitySummary struct {
	EntityInfo
	Fields     []string `json:"fields"`
	Importable bool     `json:"importable"`
	Aliases    []Alias  `json:"aliases,omitempty"`
}

// Alias lists the labels an import recognizes for one field.
type Alias struct {
	Field  string   `json:"field"`
	Labels []string `json:"labels,omitempty"`
}

// Summary returns the public view of d.
func (d EntityDefinition) Summary() EntitySummary {
	sum := EntitySummary{
		EntityInfo: d.Info,
		Fields:     append([]string{}, d.Fields...),
		Importable: d.Importable(),
	}
	if d.Schema != nil {
		for _, f := range d.Schema.Fields() {
			sum.Aliases = append(sum.Aliases, Alias{Field: f.Name, Labels: f.Aliases})
		}
	}
	return sum
}

// ImportResult contains the outcome of an import.
type ImportResult struct {
	Entity    string        `json:"entity"`
	FileName  string        `json:"file_name"`
	TotalRows int           `json:"total_rows"`
	Created   int           `json:"created"`
	Skipped   int           `json:"skipped"`
	Unmapped  []string      `json:"unmapped,omitempty"`
	Warnings  []string      `json:"warnings,omitempty"`
	Duration  time.Duration `json:"duration_ns"`
	DryRun    bool          `json:"dry_run,omitempty"`

	// Records holds the accepted records of a dry run.
	Records []importer.Record `json:"records,omitempty"`
}

// AnalyzeResult reports how the headers of a file score against an entity.
type AnalyzeResult struct {
	Entity    string                 `json:"entity"`
	FileName  string                 `json:"file_name"`
	Threshold int                    `json:"threshold"`
	Matches   []importer.HeaderMatch `json:"matches"`
}

// Delivery is a request to hand out peripherals from stock.
type Delivery struct {
	StockID   string `json:"produto_id"`
	Quantity  int    `json:"qtd"`
	GLPI      string `json:"glpi"`
	Requester string `json:"solicitante"`
	Note      string `json:"observacao"`
}
