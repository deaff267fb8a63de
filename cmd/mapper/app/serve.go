package app

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/loukach/infocar-eurotax-mapper/internal/server"
	"github.com/loukach/infocar-eurotax-mapper/internal/server/handlers"
)

// NewServeCommand creates the serve command.
func (a *App) NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the mapping REST API",
		Long: `Start the mapping API server.

The Eurotax dataset is loaded on startup and refreshed periodically in
the background. Endpoints:

  GET  /health
  GET  /api/v1/stats
  GET  /api/v1/profiles
  GET  /api/v1/search?code=...&profile=...
  GET  /api/v1/trims/{natcode}
  POST /api/v1/mappings`,
		Example: `  # Start on default port 8080
  mapper serve

  # Custom port with CORS for a specific origin
  mapper serve --port 3000 --cors-origins "https://example.com"

  # Disable rate limiting
  mapper serve --rate-limit 0`,
		RunE: a.runServe,
	}

	cmd.Flags().IntP("port", "p", 8080, "Server port")
	cmd.Flags().String("host", "localhost", "Bind address")

	cmd.Flags().Bool("cors", false, "Enable CORS for all origins")
	cmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated)")

	cmd.Flags().Int("rate-limit", 100, "Requests per minute per IP (0 to disable)")
	cmd.Flags().Duration("cache-ttl", 5*time.Minute, "Search response cache TTL")

	cmd.Flags().Duration("read-timeout", 10*time.Second, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", 30*time.Second, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", 120*time.Second, "HTTP idle timeout")

	return cmd
}

// runServe loads the dataset, starts auto-refresh and serves the API
// until the command context is cancelled.
func (a *App) runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	m, err := a.Mapper()
	if err != nil {
		return err
	}

	a.logger.Info().Str("country", a.config.Country).Msg("loading target dataset")
	if err := m.Load(ctx); err != nil {
		return err
	}
	if err := m.AutoRefreshOn(); err != nil {
		return err
	}
	defer func() { _ = m.AutoRefreshOff() }()

	cfg := server.DefaultConfig()
	cfg.Host = mustGetString(cmd, "host")
	cfg.Port, _ = cmd.Flags().GetInt("port")
	cfg.RateLimit, _ = cmd.Flags().GetInt("rate-limit")
	cfg.CacheTTL, _ = cmd.Flags().GetDuration("cache-ttl")
	cfg.ReadTimeout, _ = cmd.Flags().GetDuration("read-timeout")
	cfg.WriteTimeout, _ = cmd.Flags().GetDuration("write-timeout")
	cfg.IdleTimeout, _ = cmd.Flags().GetDuration("idle-timeout")

	corsAll, _ := cmd.Flags().GetBool("cors")
	corsOrigins, _ := cmd.Flags().GetStringSlice("cors-origins")
	cfg.CORSEnabled = corsAll || len(corsOrigins) > 0
	cfg.CORSOrigins = corsOrigins

	// A typed nil must not become a non-nil interface.
	var mappings handlers.MappingAPI
	if xc := a.Mappings(); xc != nil {
		mappings = xc
	}

	srv := server.New(m, mappings, a.config.Country, cfg, a.logger)
	return srv.Serve(ctx)
}
