package store

// IDField is the key every persisted record carries.
const IDField = "id"

// Record is one stored JSON object. Imported records hold strings; values
// edited by hand or written by other entities may be any JSON value.
type Record map[string]any

// ID returns the record's id when it is a non-empty string.
func (r Record) ID() (string, bool) {
	id, ok := r[IDField].(string)
	return id, ok && id != ""
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			m[k] = cloneValue(vv)
		}
		return m
	case Record:
		return t.Clone()
	case []any:
		s := make([]any, len(t))
		for i, vv := range t {
			s[i] = cloneValue(vv)
		}
		return s
	case []string:
		return append([]string(nil), t...)
	case []map[string]any:
		s := make([]map[string]any, len(t))
		for i, m := range t {
			s[i] = cloneValue(m).(map[string]any)
		}
		return s
	default:
		return v
	}
}
