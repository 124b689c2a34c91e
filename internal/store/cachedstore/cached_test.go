package cachedstore

import (
	"context"
	"errors"
	"testing"

	"github.com/loosegit/objcat/internal/store"
)

const (
	idA = "2eec9880e2f26fd459705a3b54263ba7e52dd8f1"
	idB = "88b1d0a94ef0b2cfa3b54263ba7e52dd8f12eec9"
)

// fakeBackend is a simple in-memory backend for testing.
type fakeBackend struct {
	data   map[string][]byte
	hits   int64
	misses int64
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{data: make(map[string][]byte)}
}

func (b *fakeBackend) Get(id string) ([]byte, bool) {
	if data, ok := b.data[id]; ok {
		b.hits++
		return data, true
	}
	b.misses++
	return nil, false
}

func (b *fakeBackend) Set(id string, data []byte) {
	b.data[id] = data
}

func (b *fakeBackend) Stats() Stats {
	return Stats{Hits: b.hits, Misses: b.misses, Size: len(b.data)}
}

// fakeStore is a simple store for testing.
type fakeStore struct {
	data  map[string][]byte
	reads int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

func (s *fakeStore) ReadObject(ctx context.Context, id string) ([]byte, error) {
	s.reads++
	if data, ok := s.data[id]; ok {
		return data, nil
	}
	return nil, store.ErrNotFound
}

func (s *fakeStore) Close() error {
	return nil
}

func TestStore_CacheHit(t *testing.T) {
	backend := newFakeBackend()
	underlying := newFakeStore()

	// Pre-populate cache.
	backend.Set(idA, []byte("cached object"))

	s := New(underlying, backend)

	data, err := s.ReadObject(context.Background(), idA)
	if err != nil {
		t.Fatalf("ReadObject() error = %v", err)
	}
	if string(data) != "cached object" {
		t.Errorf("ReadObject() = %q, want %q", data, "cached object")
	}
	if underlying.reads != 0 {
		t.Errorf("underlying reads = %d, want 0", underlying.reads)
	}

	stats := s.Stats()
	if stats.Hits != 1 {
		t.Errorf("Stats().Hits = %d, want 1", stats.Hits)
	}
}

func TestStore_CacheMiss_FillsCache(t *testing.T) {
	backend := newFakeBackend()
	underlying := newFakeStore()
	underlying.data[idB] = []byte("underlying object")

	s := New(underlying, backend)
	ctx := context.Background()

	data, err := s.ReadObject(ctx, idB)
	if err != nil {
		t.Fatalf("ReadObject() error = %v", err)
	}
	if string(data) != "underlying object" {
		t.Errorf("ReadObject() = %q, want %q", data, "underlying object")
	}

	// Second read must come from the cache.
	if _, err := s.ReadObject(ctx, idB); err != nil {
		t.Fatalf("ReadObject() second read error = %v", err)
	}
	if underlying.reads != 1 {
		t.Errorf("underlying reads = %d, want 1", underlying.reads)
	}
}

func TestStore_NotFoundNotCached(t *testing.T) {
	backend := newFakeBackend()
	underlying := newFakeStore()

	s := New(underlying, backend)

	_, err := s.ReadObject(context.Background(), idA)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("ReadObject() error = %v, want ErrNotFound", err)
	}
	if len(backend.data) != 0 {
		t.Errorf("cache size = %d after miss, want 0", len(backend.data))
	}
}

func TestStats_HitRate(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  float64
	}{
		{"empty", Stats{}, 0},
		{"all hits", Stats{Hits: 10}, 100},
		{"half", Stats{Hits: 5, Misses: 5}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.HitRate(); got != tt.want {
				t.Errorf("HitRate() = %v, want %v", got, tt.want)
			}
		})
	}
}
