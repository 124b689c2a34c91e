// Package objcat extracts loose version-control objects: it reads the
// compressed blob from a store, inflates it, decodes the payload as UTF-8
// text under a lossy policy, and optionally writes the text to a file.
//
// Example usage:
//
//	repoOpt, err := objcat.WithRepository(".git")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := objcat.New(repoOpt)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	res, err := client.ExtractToFile(ctx, "2eec9880e2f26fd459705a3b54263ba7e52dd8f1", "commit_content.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Content saved (%d bytes)\n", res.RawSize)
package objcat

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/loosegit/objcat/internal/stats"
	"github.com/loosegit/objcat/internal/store"
	"github.com/loosegit/objcat/internal/text"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrNotFound indicates the object does not exist in the store.
	ErrNotFound = errors.New("objcat: object not found")

	// ErrClosed indicates the client has been closed.
	ErrClosed = errors.New("objcat: client closed")

	// ErrNoStore indicates no store was provided.
	ErrNoStore = errors.New("objcat: no store provided")

	// ErrNoFileReader indicates the configured store cannot read objects
	// by explicit file path.
	ErrNoFileReader = errors.New("objcat: store does not support path reads")
)

// FileReader is implemented by stores that can inflate a blob at an
// explicit filesystem path, outside the loose-object layout.
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// Client extracts objects from a store.
// A Client is safe for concurrent use by multiple goroutines.
type Client struct {
	store        store.Store
	decodePolicy DecodePolicy
	stats        stats.Collector
	logger       *zap.Logger
	closed       atomic.Bool
}

// New creates a new Client with the given options.
// A store is required; everything else has sensible defaults.
func New(opts ...Option) (*Client, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	c := &Client{
		store:        cfg.store,
		decodePolicy: cfg.decodePolicy,
		stats:        cfg.stats,
		logger:       cfg.logger,
	}

	if c.store == nil {
		return nil, ErrNoStore
	}

	c.logger.Debug("client initialized",
		zap.String("decodePolicy", c.decodePolicy.String()),
	)

	return c, nil
}

// Extract reads, inflates, and decodes the object with the given hex name.
// Returns ErrNotFound if the object is not in the store.
func (c *Client) Extract(ctx context.Context, id string) (*Result, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}

	c.stats.IncCounter(stats.MetricExtracts, 1)

	raw, err := c.readObject(ctx, id)
	if err != nil {
		c.stats.IncCounter(stats.MetricExtractErrors, 1)
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("reading object %s: %w", id, err)
	}

	return c.decode(id, raw), nil
}

// ExtractPath reads, inflates, and decodes a blob at an explicit file path.
// The configured store must implement FileReader (the disk store does);
// otherwise ErrNoFileReader is returned.
func (c *Client) ExtractPath(ctx context.Context, path string) (*Result, error) {
	if c.closed.Load() {
		return nil, ErrClosed
	}

	fr, ok := c.store.(FileReader)
	if !ok {
		return nil, ErrNoFileReader
	}

	c.stats.IncCounter(stats.MetricExtracts, 1)

	raw, err := fr.ReadFile(ctx, path)
	if err != nil {
		c.stats.IncCounter(stats.MetricExtractErrors, 1)
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c.stats.IncCounter(stats.MetricObjectReads, 1)
	c.stats.ObserveHistogram(stats.MetricInflatedBytes, float64(len(raw)))

	return c.decode(path, raw), nil
}

// ExtractToFile extracts an object and writes the decoded text to dest.
// dest is created if absent and truncated if present; the write is synced
// to stable storage before ExtractToFile returns. Extraction failures leave
// dest untouched.
func (c *Client) ExtractToFile(ctx context.Context, id, dest string) (*Result, error) {
	res, err := c.Extract(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.writeText(dest, res.Text); err != nil {
		return nil, err
	}
	return res, nil
}

// ExtractPathToFile is ExtractToFile for an explicit source file path.
func (c *Client) ExtractPathToFile(ctx context.Context, path, dest string) (*Result, error) {
	res, err := c.ExtractPath(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := c.writeText(dest, res.Text); err != nil {
		return nil, err
	}
	return res, nil
}

// Close releases all resources associated with the client.
// After Close, the client should not be used.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}

	if c.store != nil {
		if err := c.store.Close(); err != nil {
			return fmt.Errorf("closing store: %w", err)
		}
	}

	return nil
}

// Store returns the storage backend used by this client.
func (c *Client) Store() store.Store {
	return c.store
}

// readObject fetches and inflates an object from storage.
func (c *Client) readObject(ctx context.Context, id string) ([]byte, error) {
	raw, err := c.store.ReadObject(ctx, id)
	if err != nil {
		return nil, err
	}
	c.stats.IncCounter(stats.MetricObjectReads, 1)
	c.stats.ObserveHistogram(stats.MetricInflatedBytes, float64(len(raw)))
	return raw, nil
}

// decode applies the lossy decoding policy to an inflated payload.
func (c *Client) decode(source string, raw []byte) *Result {
	lossy := !utf8.Valid(raw)
	if lossy {
		c.stats.IncCounter(stats.MetricLossyDecodes, 1)
		c.logger.Debug("payload contains invalid UTF-8",
			zap.String("source", source),
			zap.String("policy", c.decodePolicy.String()),
		)
	}

	return &Result{
		Source:  source,
		Text:    text.Decode(raw, text.Policy(c.decodePolicy)),
		RawSize: len(raw),
		Lossy:   lossy,
	}
}

// writeText replaces dest with the given text and syncs it.
func (c *Client) writeText(dest, content string) error {
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dest, err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("syncing %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dest, err)
	}

	c.stats.IncCounter(stats.MetricOutputWrites, 1)
	c.logger.Debug("output written",
		zap.String("dest", dest),
		zap.Int("bytes", len(content)),
	)
	return nil
}
