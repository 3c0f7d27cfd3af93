package core

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// ImportTemplate returns a CSV file with one header row naming the
// schema fields of an entity in declaration order. A file filled in from
// it maps every column with a perfect score.
func (s *Service) ImportTemplate(entity string) (fileName string, data []byte, err error) {
	def, err := s.importable(entity)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write(def.Schema.Names()); err != nil {
		return "", nil, fmt.Errorf("write template: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, fmt.Errorf("write template: %w", err)
	}

	return def.Info.Key + "_template.csv", buf.Bytes(), nil
}
