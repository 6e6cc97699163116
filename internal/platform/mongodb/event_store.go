package mongodb

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cobia-app/cobia-api/internal/domain"
	"github.com/cobia-app/cobia-api/internal/platform/logger"
	"github.com/cobia-app/cobia-api/internal/query"
	"github.com/cobia-app/cobia-api/internal/store"
)

// eventCollection is the name of the events collection.
const eventCollection = "events"

// MongoEventStore implements the store.EventStore interface using a MongoDB
// collection as the storage backend.
type MongoEventStore struct {
	conn   *Conn
	logger *slog.Logger
}

// NewMongoEventStore creates a MongoDB implementation of the EventStore
// interface. If logger is nil, a default logger will be used.
func NewMongoEventStore(conn *Conn, logger *slog.Logger) *MongoEventStore {
	if conn == nil {
		panic("conn cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MongoEventStore{
		conn:   conn,
		logger: logger.With(slog.String("component", "event_store")),
	}
}

// Ensure MongoEventStore implements store.EventStore
var _ store.EventStore = (*MongoEventStore)(nil)

// Insert implements store.EventStore.Insert.
// The underlying driver error, if any, is logged here and replaced with
// store.ErrEventCreate so the caller never sees store internals.
func (s *MongoEventStore) Insert(ctx context.Context, event domain.Event) (*store.InsertResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	db, err := s.conn.Database(ctx)
	if err != nil {
		log.Error("event insert failed", slog.Any("error", err))
		return nil, store.ErrEventCreate
	}

	res, err := db.Collection(eventCollection).InsertOne(ctx, map[string]any(event))
	if err != nil {
		log.Error("event insert failed", slog.Any("error", err))
		return nil, store.ErrEventCreate
	}

	result := &store.InsertResult{}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.Created = true
		result.InsertedCount = 1
		result.ID = oid.Hex()
	}

	log.Debug("event created",
		slog.String("id", result.ID),
		slog.Int("inserted_count", result.InsertedCount))

	return result, nil
}

// Find implements store.EventStore.Find.
// The spec's filter, sort, projection and limit are rendered as driver
// documents; failures are logged and replaced with store.ErrEventFind.
func (s *MongoEventStore) Find(ctx context.Context, spec query.Spec) ([]map[string]any, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	db, err := s.conn.Database(ctx)
	if err != nil {
		log.Error("event find failed", slog.Any("error", err))
		return nil, store.ErrEventFind
	}

	opts := options.Find().
		SetSort(sortDocument(spec.Sort)).
		SetLimit(spec.Limit)
	if projection := projectionDocument(spec.Exclude); projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := db.Collection(eventCollection).Find(ctx, filterDocument(spec.Filter), opts)
	if err != nil {
		log.Error("event find failed", slog.Any("error", err))
		return nil, store.ErrEventFind
	}

	var docs []map[string]any
	if err := cursor.All(ctx, &docs); err != nil {
		log.Error("event cursor decode failed", slog.Any("error", err))
		return nil, store.ErrEventFind
	}

	log.Debug("events found", slog.Int("count", len(docs)))

	return docs, nil
}
