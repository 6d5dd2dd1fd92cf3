// Package apiserver exposes the routing engine over a small JSON HTTP API.
package apiserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/routewise/router/pkg/decision"
	"github.com/routewise/router/pkg/observability"
)

// RouteRequest is the body of POST /api/v1/route.
type RouteRequest struct {
	Text string `json:"text"`
}

// Server serves routing decisions over HTTP.
type Server struct {
	engine *decision.Engine
}

// New creates a server around an initialized engine.
func New(engine *decision.Engine) *Server {
	return &Server{engine: engine}
}

// Start listens on the given port and serves until the listener fails.
func (s *Server) Start(port int) error {
	mux := s.setupRoutes()
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	observability.Infof("Routing API server listening on port %d", port)
	return server.ListenAndServe()
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/v1/route", s.handleRoute)

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	_, span := observability.Tracer().Start(r.Context(), "router.route")
	defer span.End()

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text must not be empty")
		return
	}

	result := s.engine.Route(req.Text)
	span.SetAttributes(
		attribute.String("router.domain", result.Domain),
		attribute.String("router.stakes", result.Stakes),
		attribute.String("router.model", result.Model),
	)

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		observability.Errorf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
