package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cobia-app/cobia-api/internal/config"
	"github.com/cobia-app/cobia-api/internal/platform/mongodb"
	"github.com/cobia-app/cobia-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Database connection handle. The underlying pooled connection is
	// established lazily on the first store operation.
	conn *mongodb.Conn

	// Stores (using interfaces for proper abstraction)
	eventStore    store.EventStore
	listItemStore store.ListItemStore
}

// newApplication creates a new application instance with all dependencies
// initialized. The database connection itself is deferred until first use.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.conn = mongodb.NewConn(cfg.Database, logger)
	app.eventStore = mongodb.NewMongoEventStore(app.conn, logger)
	app.listItemStore = mongodb.NewMongoListItemStore(app.conn, logger)

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.conn != nil {
		if err := app.conn.Close(context.Background()); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
