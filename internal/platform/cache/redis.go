// Package cache provides the Redis-backed short-TTL cache for cash register
// day overviews.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/frigosaas/frigo-backend/internal/core/domain"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/redis/go-redis/v9"
)

// RedisOverviewCache caches day overviews keyed per tenant and business
// date. TTL stays short because dashboards poll the overview endpoint and
// writes invalidate eagerly.
type RedisOverviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisOverviewCache connects to Redis and verifies the connection.
func NewRedisOverviewCache(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisOverviewCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &RedisOverviewCache{client: client, ttl: ttl}, nil
}

var _ portssvc.OverviewCache = (*RedisOverviewCache)(nil)

func overviewKey(tenantID string, businessDate time.Time) string {
	return fmt.Sprintf("overview:%s:%s", tenantID, businessDate.Format("2006-01-02"))
}

// GetOverview returns the cached overview or (nil, nil) on a miss.
func (c *RedisOverviewCache) GetOverview(ctx context.Context, tenantID string, businessDate time.Time) (*domain.DayOverview, error) {
	raw, err := c.client.Get(ctx, overviewKey(tenantID, businessDate)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read overview from cache: %w", err)
	}
	var overview domain.DayOverview
	if err := json.Unmarshal(raw, &overview); err != nil {
		return nil, fmt.Errorf("failed to decode cached overview: %w", err)
	}
	return &overview, nil
}

// SetOverview stores the overview with the configured TTL.
func (c *RedisOverviewCache) SetOverview(ctx context.Context, overview *domain.DayOverview) error {
	raw, err := json.Marshal(overview)
	if err != nil {
		return fmt.Errorf("failed to encode overview for cache: %w", err)
	}
	if err := c.client.Set(ctx, overviewKey(overview.TenantID, overview.BusinessDate), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store overview in cache: %w", err)
	}
	return nil
}

// InvalidateOverview drops the cached overview after a write.
func (c *RedisOverviewCache) InvalidateOverview(ctx context.Context, tenantID string, businessDate time.Time) error {
	if err := c.client.Del(ctx, overviewKey(tenantID, businessDate)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached overview: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (c *RedisOverviewCache) Close() error {
	return c.client.Close()
}
