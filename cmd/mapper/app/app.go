// Package app provides the application context and dependency
// management for the mapper CLI. It centralizes configuration,
// logging and the mapper instance behind a single type handed to
// every command.
package app

import (
	"context"
	"os"
	"sync"

	"github.com/rs/zerolog"

	mapper "github.com/loukach/infocar-eurotax-mapper"
	"github.com/loukach/infocar-eurotax-mapper/internal/sources/catalogue"
	"github.com/loukach/infocar-eurotax-mapper/internal/sources/xcatalog"
	"github.com/loukach/infocar-eurotax-mapper/pkg/errors"
	"github.com/loukach/infocar-eurotax-mapper/pkg/match"
)

// App represents the mapper application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Mapper instance (lazy-initialized, singleton)
	mu       sync.RWMutex
	mapper   mapper.Mapper
	mappings *xcatalog.Client
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version string.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// Mapper returns the mapper instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Mapper() (mapper.Mapper, error) {
	a.mu.RLock()
	if a.mapper != nil {
		m := a.mapper
		a.mu.RUnlock()
		return m, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.mapper != nil {
		return a.mapper, nil
	}

	m, err := a.buildMapper()
	if err != nil {
		return nil, err
	}
	a.mapper = m
	return m, nil
}

// Mappings returns the upstream mapping store client, or nil when no
// store is configured.
func (a *App) Mappings() *xcatalog.Client {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mappings
}

// buildMapper wires the upstream clients and profile registry into a
// mapper instance. Caller holds a.mu.
func (a *App) buildMapper() (mapper.Mapper, error) {
	cfg := a.config

	if cfg.CatalogueURL == "" {
		return nil, &errors.ConfigError{
			Component: "catalogue",
			Message:   "CATALOGUE_URL is required",
		}
	}
	dataset := catalogue.New(cfg.CatalogueURL, cfg.CatalogueAPIKey)

	opts := []mapper.Option{
		mapper.WithDataset(dataset),
		mapper.WithCountry(cfg.Country),
		mapper.WithRefreshInterval(cfg.RefreshInterval),
		mapper.WithLogger(a.logger),
	}

	if cfg.XCatalogURL != "" {
		xc := xcatalog.New(cfg.XCatalogURL, cfg.XCatalogAPIKey)
		a.mappings = xc
		opts = append(opts, mapper.WithFetcher(xc))
	}

	if cfg.ProfilesFile != "" {
		profiles, err := a.loadProfiles(cfg.ProfilesFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mapper.WithProfiles(profiles))
	}

	return mapper.New(opts...)
}

// loadProfiles reads a YAML profile file merged over the builtins.
func (a *App) loadProfiles(path string) (match.Profiles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()
	return match.LoadProfiles(f)
}

// Shutdown performs graceful shutdown of the application. It stops
// background refreshes when a mapper was created.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.RLock()
	m := a.mapper
	a.mu.RUnlock()

	if m != nil {
		if err := m.AutoRefreshOff(); err != nil {
			a.logger.Error().Err(err).Msg("failed to stop auto-refresh during shutdown")
		}
	}
	return nil
}
