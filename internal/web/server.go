// Package web provides the JSON HTTP API of the asset tracker.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/JonMunkholm/assettrack/internal/config"
	"github.com/JonMunkholm/assettrack/internal/core"
	"github.com/JonMunkholm/assettrack/internal/web/middleware"
)

// Server is the HTTP server for the asset tracker API.
type Server struct {
	service *core.Service
	cfg     *config.Config
	router  *chi.Mux
	server  *http.Server
}

// NewServer creates a new Server instance.
func NewServer(service *core.Service, cfg *config.Config) *Server {
	s := &Server{
		service: service,
		cfg:     cfg,
		router:  chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(middleware.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(securityHeaders)

	if s.cfg.Rate.Enabled {
		limiter := middleware.NewRateLimiter(s.cfg.Rate.RequestsPerMinute, time.Minute)
		s.router.Use(limiter.Middleware)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(&s.cfg.Security))

		// Entity catalog
		r.Get("/entities", s.handleListEntities)
		r.Get("/entities/{entity}", s.handleGetEntity)
		r.Get("/entities/{entity}/template", s.handleDownloadTemplate)

		// Records
		r.Get("/entities/{entity}/records", s.handleListRecords)
		r.Post("/entities/{entity}/records", s.handleCreateRecord)
		r.Get("/entities/{entity}/records/{id}", s.handleGetRecord)
		r.Put("/entities/{entity}/records/{id}", s.handleUpdateRecord)
		r.Delete("/entities/{entity}/records/{id}", s.handleDeleteRecord)

		// Import
		r.Post("/entities/{entity}/import", s.handleImport)
		r.Post("/entities/{entity}/import/analyze", s.handleAnalyzeImport)

		// License lifecycle
		r.Get("/licenses", s.handleListLicenses)
		r.Post("/licenses/{id}/deactivate", s.handleDeactivateLicense)
		r.Post("/licenses/{id}/reactivate", s.handleReactivateLicense)

		// Peripheral deliveries
		r.Get("/deliveries/available", s.handleAvailableStock)
		r.Post("/deliveries", s.handleDeliver)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	slog.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		w.Header().Set("X-Frame-Options", "DENY")

		// The API serves no documents, so nothing may be loaded
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		// Control referrer information
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		next.ServeHTTP(w, r)
	})
}

// healthResponse reports liveness and import slot usage.
type healthResponse struct {
	Status   string                   `json:"status"`
	Entities int                      `json:"entities"`
	Imports  core.UploadLimiterStatus `json:"imports"`
	Time     time.Time                `json:"time"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Entities: s.service.EntityCount(),
		Imports:  s.service.UploadLimiterStatus(),
		Time:     time.Now().UTC(),
	})
}

// writeJSON encodes v as JSON and writes it to w with status.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
