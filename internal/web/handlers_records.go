package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListRecords returns the records of an entity, optionally filtered
// by ?q=.
func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.service.ListRecords(r.Context(), chi.URLParam(r, "entity"), r.URL.Query().Get("q"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.service.GetRecord(r.Context(), chi.URLParam(r, "entity"), chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	data, err := decodeRecord(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	rec, err := s.service.CreateRecord(r.Context(), chi.URLParam(r, "entity"), data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	data, err := decodeRecord(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	rec, err := s.service.UpdateRecord(r.Context(), chi.URLParam(r, "entity"), chi.URLParam(r, "id"), data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteRecord(r.Context(), chi.URLParam(r, "entity"), chi.URLParam(r, "id")); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
