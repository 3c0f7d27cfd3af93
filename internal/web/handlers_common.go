package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/assettrack/internal/core"
	"github.com/JonMunkholm/assettrack/internal/store"
)

// maxBodySize bounds JSON request bodies.
const maxBodySize = 1 << 20

// multipartMemory is the part of an upload kept in memory while parsing
// the form; the rest spills to temporary files.
const multipartMemory = 8 << 20

// decodeRecord reads a JSON object from the request body. Numbers are kept
// as json.Number so they are stored exactly as sent.
func decodeRecord(w http.ResponseWriter, r *http.Request) (store.Record, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var rec store.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: body must be a JSON object: %v", core.ErrInvalidRequest, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", core.ErrInvalidRequest)
	}
	return rec, nil
}

// decodeJSON reads a JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidRequest, err)
	}
	return nil
}

// readUpload returns the name and content of the multipart "file" field,
// enforcing the configured size limit.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if isMaxBytes(err) {
			return "", nil, core.ErrFileTooLarge
		}
		return "", nil, fmt.Errorf("%w: %v", core.ErrInvalidRequest, err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil, core.ErrNoFile
		}
		return "", nil, fmt.Errorf("%w: %v", core.ErrInvalidRequest, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		if isMaxBytes(err) {
			return "", nil, core.ErrFileTooLarge
		}
		return "", nil, fmt.Errorf("read upload: %w", err)
	}

	return header.Filename, data, nil
}

func isMaxBytes(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

// boolParam parses a boolean query parameter; absent means false.
func boolParam(r *http.Request, name string) (bool, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false", core.ErrInvalidRequest, name)
	}
	return b, nil
}
