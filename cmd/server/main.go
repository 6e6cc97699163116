// Package main implements the entry point for the cobia API server, a small
// REST API for captured web request events backed by a document database.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	apimiddleware "github.com/cobia-app/cobia-api/internal/api/middleware"
	"github.com/cobia-app/cobia-api/internal/config"
	"github.com/cobia-app/cobia-api/internal/platform/logger"
)

// main initializes configuration and logging, wires the application
// dependencies, and runs the HTTP server until shutdown.
func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	apimiddleware.RegisterMetrics()

	ctx := context.Background()
	app := newApplication(cfg, appLogger)
	if err := app.Run(ctx); err != nil {
		appLogger.Error("server exited with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application-wide logging.
// Returns the loaded config, the root logger and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	return cfg, appLogger, nil
}
