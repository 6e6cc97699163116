package mongodb

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/cobia-app/cobia-api/internal/platform/logger"
	"github.com/cobia-app/cobia-api/internal/store"
)

// listItemCollection is the name of the list-items collection.
const listItemCollection = "list-items"

// MongoListItemStore implements the store.ListItemStore interface using a
// MongoDB collection as the storage backend. The collection is read-only
// from this system's perspective.
type MongoListItemStore struct {
	conn   *Conn
	logger *slog.Logger
}

// NewMongoListItemStore creates a MongoDB implementation of the
// ListItemStore interface. If logger is nil, a default logger will be used.
func NewMongoListItemStore(conn *Conn, logger *slog.Logger) *MongoListItemStore {
	if conn == nil {
		panic("conn cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MongoListItemStore{
		conn:   conn,
		logger: logger.With(slog.String("component", "list_item_store")),
	}
}

// Ensure MongoListItemStore implements store.ListItemStore
var _ store.ListItemStore = (*MongoListItemStore)(nil)

// FindAll implements store.ListItemStore.FindAll.
// No filter, sort, projection or paging is applied. Failures are logged and
// replaced with store.ErrListItemFind.
func (s *MongoListItemStore) FindAll(ctx context.Context) ([]map[string]any, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	db, err := s.conn.Database(ctx)
	if err != nil {
		log.Error("list item find failed", slog.Any("error", err))
		return nil, store.ErrListItemFind
	}

	cursor, err := db.Collection(listItemCollection).Find(ctx, bson.D{})
	if err != nil {
		log.Error("list item find failed", slog.Any("error", err))
		return nil, store.ErrListItemFind
	}

	var docs []map[string]any
	if err := cursor.All(ctx, &docs); err != nil {
		log.Error("list item cursor decode failed", slog.Any("error", err))
		return nil, store.ErrListItemFind
	}

	log.Debug("list items found", slog.Int("count", len(docs)))

	return docs, nil
}
