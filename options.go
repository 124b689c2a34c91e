package objcat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/loosegit/objcat/internal/codec/zlibcodec"
	"github.com/loosegit/objcat/internal/stats"
	"github.com/loosegit/objcat/internal/store"
	"github.com/loosegit/objcat/internal/store/diskstore"
	"github.com/loosegit/objcat/internal/text"
)

// DecodePolicy selects how invalid UTF-8 in object payloads is handled.
type DecodePolicy int

const (
	// DecodeReplace substitutes invalid sequences with U+FFFD. This is the
	// default.
	DecodeReplace DecodePolicy = iota
	// DecodeDrop omits invalid sequences from the output.
	DecodeDrop
)

// ParseDecodePolicy maps a flag value ("replace" or "drop") to a policy.
func ParseDecodePolicy(s string) (DecodePolicy, error) {
	p, ok := text.ParsePolicy(s)
	if !ok {
		return DecodeReplace, fmt.Errorf("objcat: unknown decode policy %q", s)
	}
	return DecodePolicy(p), nil
}

func (p DecodePolicy) String() string {
	return text.Policy(p).String()
}

// Option configures a Client.
type Option interface {
	apply(*options)
}

// options holds the client configuration.
type options struct {
	store        store.Store
	decodePolicy DecodePolicy
	stats        stats.Collector
	logger       *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		decodePolicy: DecodeReplace,
		stats:        stats.NewNoop(),
		logger:       zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithStore sets the storage backend to use.
func WithStore(s store.Store) Option {
	return optionFunc(func(o *options) {
		o.store = s
	})
}

// WithDecodePolicy sets the lossy decoding policy.
// If not set, invalid sequences are replaced with U+FFFD.
func WithDecodePolicy(p DecodePolicy) Option {
	return optionFunc(func(o *options) {
		o.decodePolicy = p
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}

// WithRepository configures the client to read loose objects from a local
// repository directory (the one containing "objects", usually ".git").
// Loose objects are zlib-framed, so the zlib codec is used.
// This is the recommended way to create a client for local inspection.
func WithRepository(dir string) (Option, error) {
	st, err := diskstore.New(dir, zlibcodec.New())
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}
	return WithStore(st), nil
}
