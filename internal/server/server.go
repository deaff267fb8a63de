// Package server provides the HTTP server for the mapper API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	mapper "github.com/loukach/infocar-eurotax-mapper"
	"github.com/loukach/infocar-eurotax-mapper/internal/server/handlers"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	mapper   mapper.Mapper
	handlers *handlers.Handlers
	logger   *zerolog.Logger
	config   Config
}

// New creates a new server instance with the given configuration. The
// mappings client may be nil when no upstream mapping store is
// configured.
func New(m mapper.Mapper, mappings handlers.MappingAPI, country string, cfg Config, logger *zerolog.Logger) *Server {
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = DefaultConfig().CacheTTL
	}
	if cfg.PathPrefix == "" {
		cfg.PathPrefix = DefaultConfig().PathPrefix
	}

	return &Server{
		mapper:   m,
		handlers: handlers.New(m, mappings, cfg.CacheTTL, country, logger),
		logger:   logger,
		config:   cfg,
	}
}

// Handler returns the configured http.Handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Serve runs the HTTP server until ctx is canceled, then shuts down
// gracefully, draining in-flight requests.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn().Err(err).Msg("graceful shutdown failed, closing")
		return srv.Close()
	}
	return <-errCh
}
