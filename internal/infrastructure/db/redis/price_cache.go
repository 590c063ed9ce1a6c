package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agrismart/marketplace-api/internal/core/domain"
)

const priceCacheKey = "prices:insights"

// PriceCache stores the serialized price board in Redis with a TTL.
type PriceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPriceCache creates a PriceCache wrapping the given Redis client.
// A non-positive ttl falls back to one hour.
func NewPriceCache(client *redis.Client, ttl time.Duration) *PriceCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &PriceCache{client: client, ttl: ttl}
}

// Get returns the cached price board. The second result is false on a miss.
func (c *PriceCache) Get(ctx context.Context) ([]domain.PriceInsight, bool, error) {
	raw, err := c.client.Get(ctx, priceCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("price cache get: %w", err)
	}

	var insights []domain.PriceInsight
	if err := json.Unmarshal(raw, &insights); err != nil {
		return nil, false, fmt.Errorf("price cache decode: %w", err)
	}
	return insights, true, nil
}

// Set stores the price board, replacing any previous value.
func (c *PriceCache) Set(ctx context.Context, insights []domain.PriceInsight) error {
	raw, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("price cache encode: %w", err)
	}
	return c.client.Set(ctx, priceCacheKey, raw, c.ttl).Err()
}
