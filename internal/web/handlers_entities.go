package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListEntities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"groups":   s.service.Groups(),
		"entities": s.service.Entities(),
	})
}

func (s *Server) handleGetEntity(w http.ResponseWriter, r *http.Request) {
	def, err := s.service.Entity(chi.URLParam(r, "entity"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, def.Summary())
}

// handleDownloadTemplate serves an empty CSV whose header row names the
// import fields of the entity.
func (s *Server) handleDownloadTemplate(w http.ResponseWriter, r *http.Request) {
	name, data, err := s.service.ImportTemplate(chi.URLParam(r, "entity"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	_, _ = w.Write(data)
}
