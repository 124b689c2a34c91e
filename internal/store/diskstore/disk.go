// Package diskstore implements a disk-based loose-object storage backend.
package diskstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/loosegit/objcat/internal/codec"
	"github.com/loosegit/objcat/internal/object"
	"github.com/loosegit/objcat/internal/store"
)

// Compile-time check that Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Store reads loose objects from a repository directory on disk.
type Store struct {
	root  string
	codec codec.Codec
}

// New creates a new disk store rooted at the given repository directory
// (the directory containing "objects"). The directory must exist. The codec
// handles decompression; loose objects use zlib framing.
func New(root string, codec codec.Codec) (*Store, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat repository directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	return &Store{
		root:  root,
		codec: codec,
	}, nil
}

// ReadObject reads and inflates the loose object with the given hex name.
func (s *Store) ReadObject(ctx context.Context, id string) ([]byte, error) {
	id, err := object.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.readPath(ctx, s.objectPath(id))
}

// ReadFile reads and inflates a blob at an explicit path, bypassing the
// loose-object layout. Useful for inspecting an object file that was copied
// out of a repository.
func (s *Store) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return s.readPath(ctx, path)
}

func (s *Store) readPath(ctx context.Context, path string) ([]byte, error) {
	// Check for cancellation before starting I/O.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	compressed, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("reading object: %w", err)
	}

	// Reject blobs that don't carry the codec's framing up front, for a
	// clearer error than the inflater's.
	if sn, ok := s.codec.(codec.Sniffer); ok && !sn.Sniff(compressed) {
		return nil, fmt.Errorf("%s: not a valid compressed stream", path)
	}

	// Inflate using codec.
	reader, err := s.codec.Reader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("creating decompressor: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("inflating object: %w", err)
	}

	return data, nil
}

// Close releases any resources held by the store.
func (s *Store) Close() error {
	return nil
}

// ObjectsDir returns the loose-object directory under the repository root.
func (s *Store) ObjectsDir() string {
	return filepath.Join(s.root, "objects")
}

// objectPath returns the filesystem path for a loose object.
func (s *Store) objectPath(id string) string {
	name := object.LoosePath(id)
	if ext := s.codec.Extension(); ext != "" {
		name += "." + ext
	}
	return filepath.Join(s.ObjectsDir(), name)
}
