package clientdata

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/RawdaYassin/financial-distress-app/internal/domain"
)

// CachedSource wraps a MarketDataSource with the snapshot cache. Fresh
// cache entries are served directly; on an upstream failure a stale
// entry is served as a fallback.
type CachedSource struct {
	source domain.MarketDataSource
	repo   *Repository
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCachedSource creates a caching wrapper around an upstream source.
func NewCachedSource(source domain.MarketDataSource, repo *Repository, ttl time.Duration, logger zerolog.Logger) *CachedSource {
	return &CachedSource{
		source: source,
		repo:   repo,
		ttl:    ttl,
		logger: logger.With().Str("component", "snapshot_cache").Logger(),
	}
}

// Fetch implements domain.MarketDataSource.
func (c *CachedSource) Fetch(ctx context.Context, ticker, period string) (*domain.RawSnapshot, error) {
	cached, err := c.repo.GetIfFresh(ticker, period)
	if err != nil {
		c.logger.Warn().Err(err).Str("ticker", ticker).Msg("cache read failed")
	}
	if cached != nil {
		c.logger.Debug().Str("ticker", ticker).Str("period", period).Msg("cache hit")
		return cached, nil
	}

	snapshot, fetchErr := c.source.Fetch(ctx, ticker, period)
	if fetchErr != nil {
		stale, staleErr := c.repo.Get(ticker, period)
		if staleErr == nil && stale != nil {
			c.logger.Warn().Err(fetchErr).Str("ticker", ticker).Msg("upstream failed, serving stale snapshot")
			return stale, nil
		}
		return nil, fetchErr
	}

	if err := c.repo.Store(ticker, period, snapshot, c.ttl); err != nil {
		c.logger.Warn().Err(err).Str("ticker", ticker).Msg("failed to cache snapshot")
	}
	return snapshot, nil
}
