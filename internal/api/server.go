package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ytlookup/internal/cache"
	"ytlookup/internal/view"
	"ytlookup/pkg/models"
)

var (
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrServerNotRunning     = errors.New("server is not running")
)

// Lookup fetches the upstream JSON for a video ID
type Lookup interface {
	Lookup(ctx context.Context, id string) ([]byte, error)
}

// Server represents the HTTP server
type Server struct {
	config    *models.Config
	lookup    Lookup
	cache     *cache.Manager
	version   string
	renderer  *view.Renderer
	formatter *view.Formatter
	router    *chi.Mux
	server    *http.Server
	listener  net.Listener
	running   bool
	accessLog bool
	mu        sync.RWMutex
}

// Option configures the Server
type Option func(*Server)

// WithoutAccessLog disables the per-request log lines
func WithoutAccessLog() Option {
	return func(s *Server) {
		s.accessLog = false
	}
}

// WithCache exposes the lookup cache through /api/status and /api/cache
func WithCache(c *cache.Manager) Option {
	return func(s *Server) {
		s.cache = c
	}
}

// WithVersion sets the version reported by /api/status
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// NewServer creates a new HTTP server
func NewServer(config *models.Config, lookup Lookup, opts ...Option) (*Server, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:    config,
		lookup:    lookup,
		renderer:  renderer,
		formatter: view.NewFormatter(config.Locale),
		router:    chi.NewRouter(),
		accessLog: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()

	return s, nil
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Middleware
	s.router.Use(middleware.RequestID)
	if s.accessLog {
		s.router.Use(middleware.Logger)
	}
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/status", s.handleStatus)
		r.Route("/cache", func(r chi.Router) {
			r.Get("/", s.handleListCache)
			r.Delete("/", s.handleClearCache)
			r.Get("/{videoID}", s.handleGetCacheEntry)
			r.Delete("/{videoID}", s.handleDeleteCacheEntry)
		})
		r.Get("/youtube", s.handleYouTube)
	})

	// Pages
	s.router.Get("/", s.handleHome)
	s.router.Get("/search", s.handleSearch)
	s.router.Get("/theme", s.handleTheme)
	s.router.Get("/favicon.ico", http.NotFound)
	s.router.Get("/{videoID}", s.handleDetail)
}

// Handler exposes the router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrServerAlreadyRunning
	}

	addr := s.GetAddr()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	s.listener = listener
	httpServer := &http.Server{
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.server = httpServer

	s.running = true

	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}()

	slog.Info("server listening", slog.String("addr", listener.Addr().String()))

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return ErrServerNotRunning
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.running = false
	s.server = nil
	s.listener = nil

	return nil
}

// IsRunning returns whether the server is currently running
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// GetAddr returns the configured listen address
func (s *Server) GetAddr() string {
	return net.JoinHostPort(s.config.BindHost, fmt.Sprint(s.config.WebServerPort))
}

// GetActualAddr returns the actual listening address (useful when port is 0)
func (s *Server) GetActualAddr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.GetAddr()
}

// URL returns the base URL clients should use
func (s *Server) URL() string {
	return "http://" + s.GetActualAddr()
}
