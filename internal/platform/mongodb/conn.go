// Package mongodb implements the store interfaces against a MongoDB
// deployment using the official driver.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/cobia-app/cobia-api/internal/config"
	"github.com/cobia-app/cobia-api/internal/store"
)

// Conn is the process-wide handle to the database. The underlying client is
// a single pooled connection established lazily on first use and shared by
// every store for the lifetime of the process. Initialization is guarded by
// sync.Once: concurrent first requests race safely and all observe the same
// client (or the same connection error).
type Conn struct {
	cfg    config.DatabaseConfig
	logger *slog.Logger

	once   sync.Once
	client *mongo.Client
	db     *mongo.Database
	err    error
}

// NewConn creates a connection handle from the database configuration.
// No connection is made until Database is first called.
func NewConn(cfg config.DatabaseConfig, logger *slog.Logger) *Conn {
	if logger == nil {
		logger = slog.Default()
	}
	return &Conn{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "mongodb")),
	}
}

// Database returns the shared database handle, connecting on first call.
// If the connection cannot be established the memoized result is
// store.ErrConnection and every subsequent call fails the same way; the
// underlying driver error is logged here and not propagated.
func (c *Conn) Database(ctx context.Context) (*mongo.Database, error) {
	c.once.Do(func() {
		c.logger.Debug("establishing pooled database connection",
			slog.String("database", c.cfg.Name))

		opts := options.Client().ApplyURI(c.cfg.URL)
		if c.cfg.PoolSize > 0 {
			opts.SetMaxPoolSize(c.cfg.PoolSize)
		}

		client, err := mongo.Connect(ctx, opts)
		if err == nil {
			err = client.Ping(ctx, readpref.Primary())
		}
		if err != nil {
			c.logger.Error("database connection failed", slog.Any("error", err))
			c.err = fmt.Errorf("%w: %s", store.ErrConnection, c.cfg.Name)
			return
		}

		c.logger.Info("connected to database", slog.String("database", c.cfg.Name))
		c.client = client
		c.db = client.Database(c.cfg.Name)
	})

	return c.db, c.err
}

// Close disconnects the underlying client if a connection was ever made.
func (c *Conn) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}
