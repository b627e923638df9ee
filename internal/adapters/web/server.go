package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"wbooks/internal/config"
	"wbooks/internal/ports/input"
)

// Server is the HTTP adapter.
type Server struct {
	config     *config.Config
	logger     zerolog.Logger
	httpServer *http.Server
}

// NewServer wires the greeting use case and the static root into a router.
func NewServer(cfg *config.Config, greeter input.GreetingUseCase, logger zerolog.Logger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:         cfg.Addr,
			Handler:      NewRouter(greeter, cfg.StaticDir, logger),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start binds the listen address and serves until ctx is done or SIGINT /
// SIGTERM is received, then shuts down gracefully. A bind failure is
// returned before anything is served.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("écoute sur %s impossible: %w", s.config.Addr, err)
	}

	if _, err := os.Stat(s.config.StaticDir); err != nil {
		s.logger.Warn().Err(err).Str("dir", s.config.StaticDir).Msg("static root unavailable")
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("listening")
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("serveur HTTP: %w", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("context cancelled")
	case sig := <-sigCh:
		s.logger.Info().Stringer("signal", sig).Msg("signal received")
	case err := <-serveErr:
		return err
	}

	return s.Shutdown()
}

// Shutdown stops accepting connections and waits for in-flight requests,
// up to the configured shutdown timeout.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("arrêt du serveur: %w", err)
	}

	s.logger.Info().Msg("server stopped")
	return nil
}
