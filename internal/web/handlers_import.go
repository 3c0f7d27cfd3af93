package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleImport imports the multipart "file" into an entity. With
// ?dry_run=true nothing is written and the accepted records are returned.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")

	dryRun, err := boolParam(r, "dry_run")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	name, data, err := s.readUpload(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	run := s.service.Import
	if dryRun {
		run = s.service.PreviewImport
	}

	result, err := run(r.Context(), entity, name, data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleAnalyzeImport reports how the file's headers map to the entity
// without importing.
func (s *Server) handleAnalyzeImport(w http.ResponseWriter, r *http.Request) {
	name, data, err := s.readUpload(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	result, err := s.service.AnalyzeHeaders(r.Context(), chi.URLParam(r, "entity"), name, data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
