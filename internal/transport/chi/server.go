// Package chi exposes the search engine over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sift-search/sift"
	"github.com/sift-search/sift/internal/domain"
	"github.com/sift-search/sift/internal/version"
)

// Engine is the in-process search surface the server fronts.
type Engine interface {
	Search(ctx context.Context, req sift.SearchRequest) (*sift.SearchResponse, error)
	AddItem(it sift.Item) error
	UpdateItem(id string, p sift.ItemPatch) error
	RemoveItem(id string)
	Autocomplete(q string, limit int) []string
	Stats() sift.SearchStats
	ClearHistory()
}

// Server handles HTTP requests against one engine.
type Server struct {
	engine Engine
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(engine Engine, logger *zap.Logger) *Server {
	return &Server{engine: engine, logger: logger}
}

// Register mounts all routes on the router. Middleware is the caller's
// business; main wires request ids, access logs and metrics.
func (s *Server) Register(r chi.Router) {
	r.Post("/search", s.handleSearch)
	r.Get("/autocomplete", s.handleAutocomplete)
	r.Get("/stats", s.handleStats)
	r.Delete("/stats", s.handleClearStats)
	r.Post("/items", s.handleAddItem)
	r.Patch("/items/{id}", s.handleUpdateItem)
	r.Delete("/items/{id}", s.handleRemoveItem)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// handleSearch handles POST /search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req sift.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := s.engine.Search(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleAutocomplete handles GET /autocomplete?q=...&limit=...
func (s *Server) handleAutocomplete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be an integer")
			return
		}
		limit = n
	}

	suggestions := s.engine.Autocomplete(q, limit)
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

// handleStats handles GET /stats.
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Stats())
}

// handleClearStats handles DELETE /stats.
func (s *Server) handleClearStats(w http.ResponseWriter, _ *http.Request) {
	s.engine.ClearHistory()
	w.WriteHeader(http.StatusNoContent)
}

// handleAddItem handles POST /items.
func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var it sift.Item
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.engine.AddItem(it); err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, it)
}

// handleUpdateItem handles PATCH /items/{id}. An unknown id is a no-op and
// still returns 204, matching the engine's idempotent update semantics.
func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var p sift.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.engine.UpdateItem(id, p); err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleRemoveItem handles DELETE /items/{id}. Removing an absent id is
// harmless and returns 204.
func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	s.engine.RemoveItem(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

// Error response codes.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeInternal         = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))

	switch {
	case errors.Is(err, domain.ErrInvalidQuery), errors.Is(err, domain.ErrInvalidItem):
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
	}
}
