// Package web provides the HTTP host for uploading bonus files and
// downloading duplicate and comparison reports.
package web

import (
	"context"
	"net/http"
	"time"

	"bonus-reconciliation/internal/config"
	"bonus-reconciliation/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Analyzer runs the engine on uploaded datasets.
//
//go:generate mockgen -destination=mocks/mock_analyzer.go -source=server.go Analyzer
type Analyzer interface {
	AnalyzeDuplicates(ctx context.Context, ds domain.Dataset) (*domain.DuplicateReport, error)
	CompareDatasets(ctx context.Context, mode domain.Mode, a, b domain.Dataset) (*domain.ComparisonReport, error)
}

// Server is the HTTP server for the bonus checks.
type Server struct {
	analyzer Analyzer
	cfg      *config.Config
	logger   *zap.Logger
	router   *chi.Mux
	server   *http.Server
}

// NewServer creates a new Server listening on cfg.Server.Addr once started.
func NewServer(analyzer Analyzer, cfg *config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		analyzer: analyzer,
		cfg:      cfg,
		logger:   logger,
		router:   chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/duplicates", s.handleDuplicates)
		r.Post("/compare", s.handleCompare)
	})
}

// Start begins listening for HTTP requests. It returns http.ErrServerClosed
// after Shutdown.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}
