package tabular

import (
	"bytes"
	"encoding/csv"
	"unicode/utf8"
)

// readCSV parses delimited text. The first non-empty line is the header.
func readCSV(data []byte) (*Table, error) {
	data = sanitizeUTF8(stripBOM(data))

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, &MalformedFileError{Format: FormatCSV, Err: err}
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	headers := records[0]
	table := &Table{Headers: headers}
	for _, rec := range records[1:] {
		if isEmptyRecord(rec) {
			continue
		}
		table.Rows = append(table.Rows, makeRow(headers, rec))
	}
	return table, nil
}

// sniffDelimiter picks ';' or ',' from the first non-empty line of data.
// Semicolon wins only when it occurs more often than comma outside quotes;
// everything else, including an empty file, falls back to comma.
func sniffDelimiter(data []byte) rune {
	line := bytes.TrimLeft(data, "\r\n")
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	commas, semicolons := 0, 0
	inQuotes := false
	for _, b := range line {
		switch b {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				commas++
			}
		case ';':
			if !inQuotes {
				semicolons++
			}
		}
	}

	if semicolons > commas {
		return ';'
	}
	return ','
}

// isEmptyRecord reports whether every cell of rec is empty.
func isEmptyRecord(rec []string) bool {
	for _, v := range rec {
		if v != "" {
			return false
		}
	}
	return true
}

// stripBOM removes the UTF-8 byte order mark added by Windows programs.
func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
}

// sanitizeUTF8 replaces invalid UTF-8 sequences with U+FFFD.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('\uFFFD')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}
