// Package server exposes the REST API consumed by the web frontend.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arnav-deshpande/kalakaar/internal/common"
	"github.com/arnav-deshpande/kalakaar/internal/export"
	"github.com/arnav-deshpande/kalakaar/internal/observability/metrics"
	"github.com/arnav-deshpande/kalakaar/internal/pipeline"
	"github.com/arnav-deshpande/kalakaar/internal/repository"
)

const serviceName = "kalakaar"

type Server struct {
	cfg       common.Config
	router    chi.Router
	assembler *pipeline.Assembler
	repo      repository.ArtistRepository
	exporter  *export.Service
	metrics   *metrics.Metrics
	pool      *pgxpool.Pool
	logger    *slog.Logger
}

func New(cfg common.Config, assembler *pipeline.Assembler, repo repository.ArtistRepository, exporter *export.Service, m *metrics.Metrics, pool *pgxpool.Pool, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:       cfg,
		router:    chi.NewRouter(),
		assembler: assembler,
		repo:      repo,
		exporter:  exporter,
		metrics:   m,
		pool:      pool,
		logger:    logger,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(s.requestID)
	if s.metrics != nil {
		s.router.Use(func(next http.Handler) http.Handler {
			return s.metrics.Middleware(serviceName, next)
		})
	}
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	if s.metrics != nil {
		s.router.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/extract", s.handleExtract)
		r.Route("/artists", func(r chi.Router) {
			r.Get("/", s.handleListArtists)
			r.Get("/export", s.handleExport)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetArtist)
				r.Delete("/", s.handleDeleteArtist)
				r.Post("/enhance", s.handleEnhance)
			})
		})
	})
}

// requestID tags each request with a UUID for log correlation.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := uuid.New().String()
		ctx := common.WithRequestID(r.Context(), rid)
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http.listen", "addr", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		s.logger.Info("http.shutdown.start")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Info("http.shutdown.done")
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.pool != nil {
		if err := repository.HealthCheck(r.Context(), s.pool, s.cfg.Database.HealthTimeout); err != nil {
			s.logger.Error("health.db_failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status":         "degraded",
				"ai_enhancement": s.cfg.LLM.APIKey != "",
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"ai_enhancement": s.cfg.LLM.APIKey != "",
	})
}
