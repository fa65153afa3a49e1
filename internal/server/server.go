package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/jobmatch/internal/cache"
	"github.com/jonathan/jobmatch/internal/config"
	"github.com/jonathan/jobmatch/internal/embedding"
	"github.com/jonathan/jobmatch/internal/engine"
	"github.com/jonathan/jobmatch/internal/scoring"
	"github.com/jonathan/jobmatch/internal/server/middleware"
	"github.com/jonathan/jobmatch/internal/server/ratelimit"
	"github.com/jonathan/jobmatch/internal/store"
)

// Server represents the HTTP server for the scoring API
type Server struct {
	httpServer  *http.Server
	engine      *engine.Engine
	db          store.Store
	embedder    embedding.Embedder
	rateLimiter *ratelimit.Limiter
	validate    *validator.Validate
	log         *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port           int
	DatabaseURL    string
	APIKey         string // Gemini API key; empty disables embeddings
	EmbeddingModel string
	Weights        scoring.Weights
	CacheTTL       time.Duration
	RequireAuth    bool
}

// New creates a server instance: connects the store, builds the optional
// embedding collaborator, and wires the engine behind the HTTP routes.
func New(ctx context.Context, cfg Config, log *zap.Logger) (*Server, error) {
	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:          db,
		validate:    validator.New(),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		log:         log,
	}

	engineOpts := []engine.Option{
		engine.WithWeights(cfg.Weights),
		engine.WithCache(cache.New(cfg.CacheTTL)),
		engine.WithLogger(log),
	}

	if cfg.APIKey != "" {
		embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create embedder: %w", err)
		}
		s.embedder = embedder
		engineOpts = append(engineOpts, engine.WithEmbedder(embedder))
	}

	s.engine = engine.New(db, engineOpts...)

	mux := http.NewServeMux()

	scored := http.Handler(http.HandlerFunc(s.routeScoring))
	if cfg.RequireAuth {
		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			s.closeCollaborators()
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		scored = middleware.Auth(NewJWTService(jwtConfig).AsTokenValidator())(scored)
	}

	mux.Handle("POST /score", scored)
	mux.Handle("POST /compare", scored)
	mux.Handle("POST /explain", scored)
	mux.Handle("POST /project", scored)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routeScoring dispatches the authenticated scoring routes
func (s *Server) routeScoring(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/score":
		s.handleScore(w, r)
	case "/compare":
		s.handleCompare(w, r)
	case "/explain":
		s.handleExplain(w, r)
	case "/project":
		s.handleProject(w, r)
	default:
		http.NotFound(w, r)
	}
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.closeCollaborators()
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.closeCollaborators()
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.closeCollaborators()
	s.log.Info("server stopped")
	return nil
}

func (s *Server) closeCollaborators() {
	if s.embedder != nil {
		if err := s.embedder.Close(); err != nil {
			s.log.Warn("failed to close embedder", zap.Error(err))
		}
	}
	s.db.Close()
}

// withRateLimit rejects clients over their per-endpoint budget
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		if !s.rateLimiter.Allow(clientID, r.URL.Path) {
			s.writeJSON(w, http.StatusTooManyRequests, ErrorResponse{Error: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with latency
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// extractClientID identifies a client by IP for rate limiting
func (s *Server) extractClientID(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
