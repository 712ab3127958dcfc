// Package api - Thin, read-only HTTP layer
// The API is ONLY responsible for: request parsing, pipeline invocation, JSON serialization.
// The API NEVER performs market logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"cargo-market/core/engine"
	"cargo-market/core/types"
	"cargo-market/internal/errors"
)

// Catalog is the data the API serves: everything the pipeline needs plus
// settlement listing.
type Catalog interface {
	engine.DataSource

	// Settlements lists settlements, optionally filtered by region
	Settlements(region string) []types.SettlementProperties
}

// Server is the API server
type Server struct {
	router   chi.Router
	handler  *Handler
	version  string
	origins  []string
	logger   *zap.Logger
	pipeline *engine.Pipeline
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the request logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithAllowedOrigins sets the CORS origins; the default allows any origin
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// NewServer creates a new API server over catalog
func NewServer(version string, catalog Catalog, opts ...Option) (*Server, error) {
	if catalog == nil {
		return nil, errors.Config("api server requires a catalog")
	}

	s := &Server{
		version: version,
		origins: []string{"*"},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	pipeline, err := engine.New(catalog, engine.WithLogger(s.logger.Named("engine")))
	if err != nil {
		return nil, err
	}
	s.pipeline = pipeline
	s.handler = NewHandler(catalog, pipeline)

	s.registerRoutes()
	return s, nil
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Route("/settlements", func(rr chi.Router) {
		rr.Get("/", s.handler.ListSettlements)
		rr.Get("/{name}", s.handler.GetSettlement)
		rr.Get("/{name}/offers", s.handler.GenerateOffers)
	})
	r.Get("/cargo", s.handler.ListCargo)

	s.router = r
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "cargo-market",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps a typed error onto a status code
func writeError(w http.ResponseWriter, err error) {
	errType := errors.TypeOf(err)

	status := http.StatusInternalServerError
	switch errType {
	case errors.TypeInput:
		status = http.StatusBadRequest
	case errors.TypeNotFound:
		status = http.StatusNotFound
	}

	writeJSON(w, ErrorResponse{
		Error: ErrorBody{Code: string(errType), Message: err.Error()},
	}, status)
}
