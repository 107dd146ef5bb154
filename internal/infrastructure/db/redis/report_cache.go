package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storeops/backoffice-api/internal/core/ports"
)

const (
	reportKey = "reports:summary"
	reportTTL = 30 * time.Second
)

// ReportCache keeps the last computed report summary in Redis for a short
// TTL, so repeated dashboard polls do not re-aggregate the whole store.
type ReportCache struct {
	client *redis.Client
}

func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// Get returns the cached summary, or (nil, nil) on a cache miss.
func (c *ReportCache) Get(ctx context.Context) (*ports.ReportSummary, error) {
	raw, err := c.client.Get(ctx, reportKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("report cache get: %w", err)
	}

	var summary ports.ReportSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("report cache decode: %w", err)
	}
	return &summary, nil
}

// Set stores the summary, replacing any previous entry.
func (c *ReportCache) Set(ctx context.Context, summary *ports.ReportSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("report cache encode: %w", err)
	}
	return c.client.Set(ctx, reportKey, raw, reportTTL).Err()
}
