package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pramindu123/hazardx-gateway/internal/observability"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "hazardx:geocode:"

// RedisCache shares reverse-geocode results between gateway instances.
// Redis failures are logged and treated as cache misses.
type RedisCache struct {
	inner   Geocoder
	rdb     redis.Cmdable
	ttl     time.Duration
	metrics *observability.Metrics
	logger  *zap.SugaredLogger
}

// NewRedisCache creates a Redis-backed cache decorator around a geocoder.
func NewRedisCache(inner Geocoder, rdb redis.Cmdable, ttl time.Duration, metrics *observability.Metrics, logger *zap.SugaredLogger) *RedisCache {
	return &RedisCache{inner: inner, rdb: rdb, ttl: ttl, metrics: metrics, logger: logger}
}

// NewRedisClient parses a redis:// URL and verifies the server answers.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// ReverseGeocode serves the point from Redis or asks the wrapped geocoder.
func (c *RedisCache) ReverseGeocode(ctx context.Context, lat, lng float64) (Result, error) {
	key := redisKeyPrefix + cacheKey(lat, lng)

	if res, ok := c.get(ctx, key); ok {
		return res, nil
	}

	result, err := c.inner.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return result, err
	}
	if result.Address.DistrictCandidate() != "" {
		c.set(ctx, key, result)
	}
	return result, nil
}

func (c *RedisCache) get(ctx context.Context, key string) (Result, bool) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		c.metrics.GeocodeCache.WithLabelValues("redis", "miss").Inc()
		return Result{}, false
	case err != nil:
		c.metrics.GeocodeCache.WithLabelValues("redis", "error").Inc()
		c.logger.Warnw("Redis geocode cache read failed", "key", key, "error", err)
		return Result{}, false
	}

	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		c.metrics.GeocodeCache.WithLabelValues("redis", "error").Inc()
		c.logger.Warnw("Discarding corrupt geocode cache entry", "key", key, "error", err)
		return Result{}, false
	}
	c.metrics.GeocodeCache.WithLabelValues("redis", "hit").Inc()
	return res, true
}

func (c *RedisCache) set(ctx context.Context, key string, res Result) {
	raw, err := json.Marshal(res)
	if err != nil {
		c.logger.Warnw("Failed to encode geocode result", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warnw("Redis geocode cache write failed", "key", key, "error", err)
	}
}
