package tabular

import "fmt"

// UnsupportedFormatError is returned when the file extension is not a
// supported tabular format.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return "unsupported file format: missing extension"
	}
	return fmt.Sprintf("unsupported file format: .%s", e.Extension)
}

// MalformedFileError is returned when the file content cannot be parsed in
// the format its extension claims.
type MalformedFileError struct {
	Format Format
	Err    error
}

func (e *MalformedFileError) Error() string {
	return fmt.Sprintf("malformed %s file: %v", e.Format, e.Err)
}

func (e *MalformedFileError) Unwrap() error {
	return e.Err
}
