// Package store defines the persistence interfaces and error taxonomy for
// the cobia API. Implementations live under internal/platform.
package store

import (
	"context"

	"github.com/cobia-app/cobia-api/internal/domain"
	"github.com/cobia-app/cobia-api/internal/query"
)

// InsertResult reports the outcome of a single-document insert.
type InsertResult struct {
	// Created is true when the store acknowledged the insert and reports at
	// least one inserted document.
	Created bool

	// InsertedCount is the number of documents the store reports inserted.
	InsertedCount int

	// ID is the string form of the new document's _id.
	ID string
}

// EventStore defines persistence for the events collection. Events are
// append-only: there are no update or delete operations.
type EventStore interface {
	// Insert saves one event document.
	// Returns ErrEventCreate if the store operation fails; the underlying
	// cause is logged server-side and never surfaced to callers.
	Insert(ctx context.Context, event domain.Event) (*InsertResult, error)

	// Find runs a filtered, sorted, projected, limited query against the
	// events collection and returns the raw matching documents.
	// Returns ErrEventFind if the store operation fails.
	Find(ctx context.Context, spec query.Spec) ([]map[string]any, error)
}

// ListItemStore defines read-only access to the list-items collection.
// The collection is pre-existing and opaque; no schema is enforced here.
type ListItemStore interface {
	// FindAll returns every document in the collection, unfiltered and
	// unsorted. Returns ErrListItemFind if the store operation fails.
	FindAll(ctx context.Context) ([]map[string]any, error)
}
