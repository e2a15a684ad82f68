// Package server provides the HTTP server and routing for the Trust Score
// service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/yashbhanu1/Alternate-Credit/internal/clients/gemini"
	"github.com/yashbhanu1/Alternate-Credit/internal/domain"
	"github.com/yashbhanu1/Alternate-Credit/internal/profiles"
)

// Config holds server configuration
type Config struct {
	Port     int
	Log      zerolog.Logger
	Registry *profiles.Registry
	Gemini   *gemini.Client
	DevMode  bool
	Version  string
}

// Server represents the HTTP server
type Server struct {
	router   *chi.Mux
	server   *http.Server
	log      zerolog.Logger
	registry *profiles.Registry
	gemini   *gemini.Client
	version  string
	started  time.Time

	// Manual overrides are presentation-layer state: ephemeral, in-memory,
	// keyed by profile ID. The scoring core never sees them.
	overrideMu sync.RWMutex
	overrides  map[string]domain.DecisionStatus
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		log:       cfg.Log.With().Str("component", "server").Logger(),
		registry:  cfg.Registry,
		gemini:    cfg.Gemini,
		version:   cfg.Version,
		started:   time.Now(),
		overrides: make(map[string]domain.DecisionStatus),
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	// Permissive CORS in dev mode so the frontend dev server can connect
	if devMode {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", s.handleListProfiles)
			r.Post("/", s.handleAddProfile)
			r.Get("/{id}", s.handleGetProfile)
			r.Get("/{id}/score", s.handleScoreProfile)
			r.Post("/{id}/analysis", s.handleAnalysis)
			r.Post("/{id}/override", s.handleSetOverride)
			r.Delete("/{id}/override", s.handleClearOverride)
		})

		r.Post("/score", s.handleScoreAdhoc)
		r.Post("/loans/evaluate", s.handleEvaluateLoan)
		r.Get("/chat/ws", s.handleChatWS)
		r.Get("/system/status", s.handleSystemStatus)
	})
}

// Handler exposes the router, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("HTTP server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
