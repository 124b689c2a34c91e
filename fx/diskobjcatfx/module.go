// Package diskobjcatfx provides an fx module for a disk-backed objcat client.
package diskobjcatfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/loosegit/objcat"
	"github.com/loosegit/objcat/internal/codec/zlibcodec"
	"github.com/loosegit/objcat/internal/stats"
	"github.com/loosegit/objcat/internal/stats/logger"
	"github.com/loosegit/objcat/internal/store/cachedstore"
	"github.com/loosegit/objcat/internal/store/cachedstore/cachestrategy/lru"
	"github.com/loosegit/objcat/internal/store/cachedstore/memory"
	"github.com/loosegit/objcat/internal/store/diskstore"
)

// Config holds configuration for the disk-backed objcat client.
type Config struct {
	// RepoDir is the repository directory containing "objects"
	// (usually ".git").
	RepoDir string

	// CacheSize is the number of inflated objects to cache in memory.
	// Default is 100.
	CacheSize int

	// DropInvalidUTF8 switches decoding from U+FFFD substitution to
	// omission of invalid sequences.
	DropInvalidUTF8 bool
}

// Module provides a disk-backed objcat client.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("diskobjcat",
	fx.Provide(
		newStatsCollector,
		newClient,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("objcat.stats"))
}

// Params holds dependencies for creating the client.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
	Lifecycle fx.Lifecycle
}

// Result holds the provided client.
type Result struct {
	fx.Out

	Client *objcat.Client
}

func newClient(p Params) (Result, error) {
	cacheSize := p.Config.CacheSize
	if cacheSize <= 0 {
		cacheSize = 100
	}

	baseStore, err := diskstore.New(p.Config.RepoDir, zlibcodec.New())
	if err != nil {
		return Result{}, err
	}

	lruStrategy, err := lru.New(cacheSize)
	if err != nil {
		return Result{}, err
	}

	st := cachedstore.New(baseStore, memory.New(lruStrategy, p.Collector))

	policy := objcat.DecodeReplace
	if p.Config.DropInvalidUTF8 {
		policy = objcat.DecodeDrop
	}

	client, err := objcat.New(
		objcat.WithStore(st),
		objcat.WithDecodePolicy(policy),
		objcat.WithStats(p.Collector),
		objcat.WithLogger(p.Logger.Named("objcat")),
	)
	if err != nil {
		return Result{}, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return Result{Client: client}, nil
}
