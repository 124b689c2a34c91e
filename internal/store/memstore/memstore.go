// Package memstore provides an in-memory store implementation for testing.
package memstore

import (
	"context"
	"sync"

	"github.com/loosegit/objcat/internal/store"
)

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store is an in-memory store for testing. It holds objects already
// inflated, keyed by hex name.
type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		objects: make(map[string][]byte),
	}
}

// SetObject sets the inflated payload for an object (for test setup).
// The data is copied to prevent caller mutations from affecting the store.
func (s *Store) SetObject(id string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	s.objects[id] = copied
}

// ReadObject reads an object from memory.
func (s *Store) ReadObject(ctx context.Context, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return data, nil
}

// Close is a no-op for the memory store.
func (s *Store) Close() error {
	return nil
}
