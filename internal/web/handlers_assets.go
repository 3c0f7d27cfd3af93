package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/assettrack/internal/core"
)

// handleListLicenses returns license holders filtered by ?status= (active,
// inactive or all) and ?q=.
func (s *Server) handleListLicenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records, err := s.service.ListLicenses(r.Context(), q.Get("status"), q.Get("q"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleDeactivateLicense(w http.ResponseWriter, r *http.Request) {
	rec, err := s.service.DeactivateLicense(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleReactivateLicense(w http.ResponseWriter, r *http.Request) {
	rec, err := s.service.ReactivateLicense(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleAvailableStock(w http.ResponseWriter, r *http.Request) {
	records, err := s.service.AvailableStock(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleDeliver(w http.ResponseWriter, r *http.Request) {
	var d core.Delivery
	if err := decodeJSON(w, r, &d); err != nil {
		s.respondError(w, r, err)
		return
	}

	rec, err := s.service.DeliverPeripheral(r.Context(), d)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}
