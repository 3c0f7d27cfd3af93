package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/JonMunkholm/assettrack/internal/store"
	"github.com/JonMunkholm/assettrack/internal/tabular"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"nil error returns empty", nil, ""},
		{"unsupported format", fmt.Errorf("read x.pdf: %w", &tabular.UnsupportedFormatError{Extension: "pdf"}), "FILE001"},
		{"malformed file", &tabular.MalformedFileError{Format: tabular.FormatXLSX, Err: errors.New("zip: not a valid zip file")}, "FILE002"},
		{"file too large", fmt.Errorf("upload: %w", ErrFileTooLarge), "FILE003"},
		{"no file", ErrNoFile, "FILE004"},
		{"corrupt store", fmt.Errorf("load vpn.json: %w: invalid character", store.ErrCorrupt), "STORE001"},
		{"duplicate id", fmt.Errorf("create: %w", store.ErrDuplicateID), "STORE002"},
		{"record not found", fmt.Errorf("vpn abc: %w", ErrRecordNotFound), "REC001"},
		{"invalid quantity", ErrInvalidQuantity, "REC002"},
		{"insufficient stock", fmt.Errorf("%w: requested 5, available 2", ErrInsufficientStock), "REC003"},
		{"unknown entity", fmt.Errorf("%w: boats", ErrUnknownEntity), "ENT001"},
		{"import not supported", fmt.Errorf("deliveries: %w", ErrImportNotSupported), "IMP001"},
		{"invalid request", fmt.Errorf("%w: body is not a JSON object", ErrInvalidRequest), "REQ001"},
		{"too many uploads", ErrTooManyUploads, "UPL002"},
		{"cancelled", fmt.Errorf("save vpn: %w", context.Canceled), "UPL004"},
		{"deadline", context.DeadlineExceeded, "UPL005"},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), "STORE003"},
		{"sqlite busy", errors.New("upsert vpn: database is locked (5) (SQLITE_BUSY)"), "STORE003"},
		{"unknown error", errors.New("something strange"), "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q (message %q)", got.Code, tt.wantCode, got.Message)
			}
			if tt.err != nil && (got.Message == "" || got.Action == "") {
				t.Errorf("MapError() returned incomplete message: %+v", got)
			}
		})
	}
}

func TestMapError_TypedBeforePatterns(t *testing.T) {
	// A corrupt collection whose parse error mentions a connection must
	// still report the corruption.
	err := fmt.Errorf("load x: %w: connection reset", store.ErrCorrupt)
	if got := MapError(err).Code; got != "STORE001" {
		t.Errorf("code = %q, want STORE001", got)
	}
}

func TestFormatUserError(t *testing.T) {
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}

	got := FormatUserError(ErrNoFile)
	want := "No file was selected (Code: FILE004). Select a CSV or XLSX file to import"
	if got != want {
		t.Errorf("FormatUserError() = %q, want %q", got, want)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{ErrRecordNotFound, true},
		{errors.New("random"), false},
	}

	for _, tt := range tests {
		if got := IsUserFacing(tt.err); got != tt.want {
			t.Errorf("IsUserFacing(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestMapError_UnknownEntitySuggestions(t *testing.T) {
	err := fmt.Errorf("list: %w", &UnknownEntityError{Key: "licences", Suggestions: []string{"licenses"}})

	if !errors.Is(err, ErrUnknownEntity) {
		t.Fatal("UnknownEntityError should match ErrUnknownEntity")
	}
	got := MapError(err)
	if got.Code != "ENT001" {
		t.Errorf("code = %q, want ENT001", got.Code)
	}
	if got.Action != "Did you mean licenses?" {
		t.Errorf("action = %q", got.Action)
	}

	plain := MapError(&UnknownEntityError{Key: "boats"})
	if plain.Action == "" || plain.Action == got.Action {
		t.Errorf("action without suggestions = %q", plain.Action)
	}
}
