package memory

import (
	"testing"

	"github.com/loosegit/objcat/internal/store/cachedstore/cachestrategy/lru"
)

const (
	idA = "2eec9880e2f26fd459705a3b54263ba7e52dd8f1"
	idB = "88b1d0a94ef0b2cfa3b54263ba7e52dd8f12eec9"
)

func TestBackend_GetSet(t *testing.T) {
	strategy, err := lru.New(10)
	if err != nil {
		t.Fatalf("lru.New() error = %v", err)
	}
	b := New(strategy, nil)

	// Initially empty.
	if _, ok := b.Get(idA); ok {
		t.Error("Get() should return false for missing key")
	}

	// Set and get.
	b.Set(idA, []byte("hello"))
	data, ok := b.Get(idA)
	if !ok {
		t.Error("Get() should return true after Set")
	}
	if string(data) != "hello" {
		t.Errorf("Get() = %q, want %q", data, "hello")
	}
}

func TestBackend_Stats(t *testing.T) {
	strategy, err := lru.New(10)
	if err != nil {
		t.Fatalf("lru.New() error = %v", err)
	}
	b := New(strategy, nil)

	b.Set(idA, []byte("data"))

	// Hit.
	b.Get(idA)
	// Miss.
	b.Get(idB)

	stats := b.Stats()
	if stats.Hits != 1 {
		t.Errorf("Stats().Hits = %d, want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Stats().Misses = %d, want 1", stats.Misses)
	}
	if stats.Size != 1 {
		t.Errorf("Stats().Size = %d, want 1", stats.Size)
	}
}

func TestBackend_Eviction(t *testing.T) {
	strategy, err := lru.New(1)
	if err != nil {
		t.Fatalf("lru.New() error = %v", err)
	}
	b := New(strategy, nil)

	b.Set(idA, []byte("first"))
	b.Set(idB, []byte("second"))

	if _, ok := b.Get(idA); ok {
		t.Error("Get() should return false for evicted key")
	}
	if data, ok := b.Get(idB); !ok || string(data) != "second" {
		t.Errorf("Get() = %q, %v, want %q, true", data, ok, "second")
	}
}
