// Package api exposes the bet client over HTTP for the web app.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/smartcontractkit/bet-contract-client/bet"
	"github.com/smartcontractkit/bet-contract-client/pkg/logger"
)

const (
	// DefaultRequestTimeout bounds a single request, including the contract call.
	DefaultRequestTimeout = 30 * time.Second
	// shutdownTimeout bounds the graceful shutdown in Run.
	shutdownTimeout = 5 * time.Second
)

// QuestionCreator is the part of bet.Client the server needs.
type QuestionCreator interface {
	CreateQuestion(ctx context.Context) (bet.CreateQuestionResult, error)
}

var _ QuestionCreator = (*bet.Client)(nil)

// ServerConfig holds the configuration of the Server.
type ServerConfig struct {
	// Required: serves POST /questions.
	Creator QuestionCreator
	// Optional: the address Run listens on. Defaults to ":8080".
	ListenAddr string
	// Optional: defaults to DefaultRequestTimeout.
	RequestTimeout time.Duration
	// Optional: defaults to a no-op logger.
	Logger logger.Logger
}

// Server is the HTTP surface of the bet client.
type Server struct {
	cfg    ServerConfig
	router chi.Router
}

// NewServer creates a new Server and registers its routes.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Creator == nil {
		return nil, errors.New("question creator is required")
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	s := &Server{cfg: cfg, router: chi.NewRouter()}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(cfg.RequestTimeout))

	s.router.Get("/health", s.handleHealth)
	s.router.Post("/questions", s.handleCreateQuestion)

	return s, nil
}

// Handler returns the router of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.cfg.Logger.Infow("HTTP server listening", "addr", s.cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.cfg.Logger.Infow("HTTP server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	res, err := s.cfg.Creator.CreateQuestion(r.Context())
	if err != nil {
		s.cfg.Logger.Warnw("createQuestion call rejected",
			"requestID", middleware.GetReqID(r.Context()),
			"err", err,
		)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})

		return
	}

	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
