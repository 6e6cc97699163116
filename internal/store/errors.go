package store

import (
	"errors"
	"fmt"
)

// Common store errors. The entity-specific errors carry the fixed domain
// messages shown to clients; the underlying store error is logged at the
// store boundary and intentionally dropped from the chain above it.
var (
	// ErrStorage is the generic "store operation failed" error. All
	// entity-specific storage errors wrap it.
	ErrStorage = errors.New("storage operation failed")

	// ErrConnection is returned when a connection to the store cannot be
	// established at all. Every dependent operation then fails with one of
	// the storage errors below.
	ErrConnection = errors.New("unable to connect to the database")

	// ErrEventCreate indicates the insert into the events collection failed.
	ErrEventCreate = fmt.Errorf("%w: there's a problem creating the event in the database", ErrStorage)

	// ErrEventFind indicates a query against the events collection failed.
	ErrEventFind = fmt.Errorf("%w: there's a problem finding the events in the database", ErrStorage)

	// ErrListItemFind indicates a query against the list-items collection failed.
	ErrListItemFind = fmt.Errorf("%w: there's a problem finding the documents in the database", ErrStorage)
)

// IsStorageError checks if the error is any kind of storage failure,
// including connection failures.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage) || errors.Is(err, ErrConnection)
}
