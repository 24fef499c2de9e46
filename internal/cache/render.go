// Package cache holds rendered SVG output in Redis. Only presentation
// output is cached; entity lookups always read the in-memory documents.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RenderCache stores rendered SVG documents keyed by request shape. A
// nil *RenderCache is valid and caches nothing, so callers never branch
// on whether Redis is configured.
type RenderCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRenderCache connects to Redis and verifies the connection.
func NewRenderCache(redisURL string, ttl time.Duration) (*RenderCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RenderCache{client: client, ttl: ttl}, nil
}

// Close closes the Redis connection.
func (c *RenderCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// HealthCheck pings Redis to verify the connection.
func (c *RenderCache) HealthCheck(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// GetSVG returns a cached rendering, if any. Redis errors count as a
// miss; the caller re-renders.
func (c *RenderCache) GetSVG(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	svg, err := c.client.Get(ctx, "svg:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	return svg, true
}

// SetSVG stores a rendering under the cache TTL. Failures are ignored;
// the cache is best-effort.
func (c *RenderCache) SetSVG(ctx context.Context, key string, svg []byte) {
	if c == nil {
		return
	}
	c.client.Set(ctx, "svg:"+key, svg, c.ttl)
}
