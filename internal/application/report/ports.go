package report

import (
	"context"
	"time"
)

// StatsCache is an optional byte cache for the dashboard summary. A nil cache
// disables caching entirely.
type StatsCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
