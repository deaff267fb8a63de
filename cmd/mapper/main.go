// Package main provides the entry point for the mapper CLI tool.
package main

import (
	"context"
	"os"
	"time"

	"github.com/loukach/infocar-eurotax-mapper/cmd/mapper/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	// Context cancelled on SIGINT/SIGTERM for graceful shutdown
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if shutdownErr := application.Shutdown(shutdownCtx); shutdownErr != nil {
			application.Logger().Error().Err(shutdownErr).Msg("shutdown error during error handling")
		}
		app.ExitOnError(err)
	}
}
