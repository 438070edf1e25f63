// Package server provides the HTTP server and routing for the distress
// analysis service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/RawdaYassin/financial-distress-app/internal/analyzer"
	"github.com/RawdaYassin/financial-distress-app/internal/artifacts"
	"github.com/RawdaYassin/financial-distress-app/internal/companies"
	"github.com/RawdaYassin/financial-distress-app/internal/database"
)

// Config holds server configuration
type Config struct {
	Log       zerolog.Logger
	CatalogDB *database.DB
	CacheDB   *database.DB
	Analyzer  *analyzer.Service
	Companies *companies.Repository
	Fairness  *artifacts.FairnessReport // nil when the report artifact is absent
	Port      int
	DevMode   bool
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	catalogDB      *database.DB
	cacheDB        *database.DB
	analyzer       *analyzer.Service
	companies      *companies.Repository
	fairness       *artifacts.FairnessReport
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		log:       cfg.Log.With().Str("component", "server").Logger(),
		catalogDB: cfg.CatalogDB,
		cacheDB:   cfg.CacheDB,
		analyzer:  cfg.Analyzer,
		companies: cfg.Companies,
		fairness:  cfg.Fairness,
	}
	s.systemHandlers = NewSystemHandlers(cfg.Log, cfg.CatalogDB, cfg.CacheDB)

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // analysis calls the upstream market API
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/analysis", s.handleAnalyze)
		r.Get("/analysis/{id}/report", s.handleReportDownload)
		r.Get("/companies", s.handleCompanies)
		r.Get("/countries", s.handleCountries)
		r.Get("/fairness", s.handleFairness)
		r.Get("/system/health", s.systemHandlers.HandleSystemHealth)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
