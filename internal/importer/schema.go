package importer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFieldName is returned when a schema field has no canonical name.
	ErrEmptyFieldName = errors.New("empty canonical field name")

	// ErrDuplicateField is returned when two schema fields share a canonical name.
	ErrDuplicateField = errors.New("duplicate canonical field name")
)

// Field is one canonical field of an import schema together with the
// alternative labels a source file may use for it.
type Field struct {
	Name    string
	Aliases []string
}

// Schema is an ordered, immutable list of canonical fields. Declaration
// order decides ties when the mapper scores two labels equally.
type Schema struct {
	fields []Field
}

// NewSchema validates and copies fields into a Schema.
func NewSchema(fields ...Field) (*Schema, error) {
	seen := make(map[string]bool, len(fields))
	copied := make([]Field, 0, len(fields))

	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field %d: %w", i, ErrEmptyFieldName)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		seen[f.Name] = true

		copied = append(copied, Field{
			Name:    f.Name,
			Aliases: append([]string(nil), f.Aliases...),
		})
	}

	return &Schema{fields: copied}, nil
}

// MustSchema is like NewSchema but panics on error. Intended for package-level
// entity definitions.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(fmt.Sprintf("importer: invalid schema: %v", err))
	}
	return s
}

// Fields returns a copy of the schema's fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	for i, f := range s.fields {
		out[i] = Field{Name: f.Name, Aliases: append([]string(nil), f.Aliases...)}
	}
	return out
}

// Names returns the canonical field names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of canonical fields.
func (s *Schema) Len() int {
	return len(s.fields)
}
