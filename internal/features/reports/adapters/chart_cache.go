package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sales-dashboard/internal/core/cache"
	"sales-dashboard/internal/core/logger"

	"go.uber.org/zap"
)

// RedisChartCache keeps chart-data payloads warm for a short TTL so that
// auto-refresh polling from many admin sessions does not re-run the
// aggregation queries every time. The dashboard page itself is never cached.
type RedisChartCache struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisChartCache creates a chart cache with the given freshness window.
func NewRedisChartCache(c cache.Cache, ttl time.Duration) *RedisChartCache {
	return &RedisChartCache{cache: c, ttl: ttl}
}

// Get returns the cached payload for a period. Cache outages degrade to a
// miss; the caller falls through to the aggregation query.
func (r *RedisChartCache) Get(ctx context.Context, periodDays int) ([]byte, bool) {
	payload, err := r.cache.Get(ctx, chartKey(periodDays))
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Get().Warn("Chart cache read failed",
				zap.Int("period_days", periodDays),
				zap.Error(err),
			)
		}
		return nil, false
	}
	return payload, true
}

// Set stores a payload for a period. Failures are logged, never surfaced.
func (r *RedisChartCache) Set(ctx context.Context, periodDays int, payload []byte) {
	if err := r.cache.Set(ctx, chartKey(periodDays), payload, r.ttl); err != nil {
		logger.Get().Warn("Chart cache write failed",
			zap.Int("period_days", periodDays),
			zap.Error(err),
		)
	}
}

func chartKey(periodDays int) string {
	return fmt.Sprintf("chart:%d", periodDays)
}
