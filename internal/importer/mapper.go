package importer

// DefaultThreshold is the minimum score a header needs to be mapped.
const DefaultThreshold = 80

// candidate is one entry of the reverse lookup: a normalized label and the
// canonical field it resolves to.
type candidate struct {
	label string
	field string
	key   key
}

// HeaderMatch is the outcome of scoring one header against a schema.
// Field and Label are the best candidate even when Score is below the
// threshold; Mapped tells whether the header will be used.
type HeaderMatch struct {
	Header string `json:"header"`
	Field  string `json:"field,omitempty"`
	Label  string `json:"label,omitempty"`
	Score  int    `json:"score"`
	Mapped bool   `json:"mapped"`
}

// Mapper resolves file headers to canonical fields of one schema.
// A Mapper is immutable and safe for concurrent use.
type Mapper struct {
	threshold  int
	candidates []candidate
}

// NewMapper builds the reverse lookup for schema. Each field contributes its
// canonical name followed by its aliases; when two labels normalize to the
// same key, the first declared keeps it. A threshold outside 1..100 falls
// back to DefaultThreshold.
func NewMapper(schema *Schema, threshold int) *Mapper {
	if threshold < 1 || threshold > 100 {
		threshold = DefaultThreshold
	}

	m := &Mapper{threshold: threshold}
	seen := make(map[string]bool)

	for _, f := range schema.fields {
		labels := append([]string{f.Name}, f.Aliases...)
		for _, label := range labels {
			k := keyOf(label)
			if k.plain == "" || seen[k.plain] {
				continue
			}
			seen[k.plain] = true
			m.candidates = append(m.candidates, candidate{label: label, field: f.Name, key: k})
		}
	}

	return m
}

// Threshold returns the effective minimum score.
func (m *Mapper) Threshold() int {
	return m.threshold
}

// Match scores header against every candidate and returns the best one.
// On equal scores the earliest declared candidate wins.
func (m *Mapper) Match(header string) HeaderMatch {
	hm := HeaderMatch{Header: header}
	h := keyOf(header)
	if h.plain == "" {
		return hm
	}

	best := -1
	for _, c := range m.candidates {
		s := score(h, c.key)
		if s > best {
			best = s
			hm.Field, hm.Label, hm.Score = c.field, c.label, s
		}
		if s == 100 {
			break
		}
	}

	hm.Mapped = hm.Field != "" && hm.Score >= m.threshold
	return hm
}

// Analyze returns the match of every header, in column order, including the
// ones that fall below the threshold.
func (m *Mapper) Analyze(headers []string) []HeaderMatch {
	matches := make([]HeaderMatch, len(headers))
	for i, h := range headers {
		matches[i] = m.Match(h)
	}
	return matches
}

// MapHeaders resolves every header and keeps those reaching the threshold.
func (m *Mapper) MapHeaders(headers []string) *HeaderMap {
	hm := &HeaderMap{
		fields:  make(map[string]string),
		columns: append([]string(nil), headers...),
	}

	for _, h := range headers {
		if _, done := hm.fields[h]; done {
			continue
		}
		if match := m.Match(h); match.Mapped {
			hm.fields[h] = match.Field
		}
	}

	return hm
}

// HeaderMap is the header→field mapping of one file. Headers missing from it
// are ignored by the builder.
type HeaderMap struct {
	fields  map[string]string
	columns []string
}

// Field returns the canonical field for header.
func (hm *HeaderMap) Field(header string) (string, bool) {
	f, ok := hm.fields[header]
	return f, ok
}

// Len returns the number of distinct mapped headers.
func (hm *HeaderMap) Len() int {
	return len(hm.fields)
}

// Unmapped returns the distinct headers that resolved to no field, in
// column order.
func (hm *HeaderMap) Unmapped() []string {
	var out []string
	seen := make(map[string]bool)
	for _, h := range hm.columns {
		if _, ok := hm.fields[h]; ok || seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	return out
}

// Conflict describes a canonical field fed by more than one column.
// The builder keeps the value of the last column listed.
type Conflict struct {
	Field   string   `json:"field"`
	Headers []string `json:"headers"`
}

// Conflicts lists every field that more than one column maps to, ordered by
// the field's first column.
func (hm *HeaderMap) Conflicts() []Conflict {
	byField := make(map[string][]string)
	var order []string

	for _, h := range hm.columns {
		f, ok := hm.fields[h]
		if !ok {
			continue
		}
		if _, seen := byField[f]; !seen {
			order = append(order, f)
		}
		byField[f] = append(byField[f], h)
	}

	var out []Conflict
	for _, f := range order {
		if cols := byField[f]; len(cols) > 1 {
			out = append(out, Conflict{Field: f, Headers: cols})
		}
	}
	return out
}
