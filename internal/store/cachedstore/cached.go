package cachedstore

import (
	"context"

	"github.com/loosegit/objcat/internal/store"
)

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store wraps another Store with caching. Objects are content-addressed and
// immutable, so cached entries never need invalidation.
type Store struct {
	underlying store.Store
	backend    Backend
}

// New creates a new cached store wrapping the given store.
func New(underlying store.Store, backend Backend) *Store {
	return &Store{
		underlying: underlying,
		backend:    backend,
	}
}

// ReadObject reads an object, checking the cache first.
func (s *Store) ReadObject(ctx context.Context, id string) ([]byte, error) {
	// Check cache first.
	if data, ok := s.backend.Get(id); ok {
		return data, nil
	}

	// Cache miss - read from underlying store.
	data, err := s.underlying.ReadObject(ctx, id)
	if err != nil {
		return nil, err
	}

	// Cache the result.
	s.backend.Set(id, data)

	return data, nil
}

// Close closes the underlying store.
func (s *Store) Close() error {
	return s.underlying.Close()
}

// Stats returns cache statistics.
func (s *Store) Stats() Stats {
	return s.backend.Stats()
}
