package source

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/absence-report/internal/domain/contract"
	"github.com/diegoclair/absence-report/internal/domain/entity"
	"go.uber.org/zap"
)

// CachedFetcher serves remote tables from the source cache while the snapshot
// is younger than ttl. A failed download falls back to a stale snapshot. Local
// files are always read from disk.
type CachedFetcher struct {
	downloader contract.Downloader
	cache      contract.SourceCacheRepo
	ttl        time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

func NewCachedFetcher(downloader contract.Downloader, cache contract.SourceCacheRepo, ttl time.Duration, logger *zap.Logger) *CachedFetcher {
	return &CachedFetcher{
		downloader: downloader,
		cache:      cache,
		ttl:        ttl,
		logger:     logger,
		now:        time.Now,
	}
}

func (c *CachedFetcher) Fetch(ctx context.Context, location string) (*entity.Table, error) {
	if !isRemote(location) {
		snap, err := c.downloader.Download(ctx, location)
		if err != nil {
			return nil, err
		}
		return Decode(snap)
	}

	cached, err := c.cache.GetByLocation(ctx, location)
	if err != nil {
		c.logger.Warn("failed to read source cache", zap.String("location", location), zap.Error(err))
		cached = nil
	}

	if cached != nil && c.now().Sub(cached.FetchedAt) < c.ttl {
		c.logger.Debug("serving source from cache", zap.String("location", location))
		return Decode(cached)
	}

	fresh, err := c.downloader.Download(ctx, location)
	if err != nil {
		if cached == nil {
			return nil, err
		}
		c.logger.Warn("download failed, serving stale snapshot",
			zap.String("location", location),
			zap.Time("fetched_at", cached.FetchedAt),
			zap.Error(err),
		)
		return Decode(cached)
	}

	table, err := Decode(fresh)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", location, err)
	}

	if err := c.cache.Upsert(ctx, fresh); err != nil {
		c.logger.Warn("failed to store source snapshot", zap.String("location", location), zap.Error(err))
	}

	return table, nil
}
