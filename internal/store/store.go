// Package store defines the storage backend interface for reading loose objects.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an object does not exist in the store.
var ErrNotFound = errors.New("store: object not found")

// Store defines the interface for storage backends.
// Implementations handle path layout and decompression internally, so
// ReadObject always returns the inflated payload.
type Store interface {
	// ReadObject reads and inflates the object with the given hex name.
	ReadObject(ctx context.Context, id string) ([]byte, error)

	// Close releases any resources held by the store.
	Close() error
}
