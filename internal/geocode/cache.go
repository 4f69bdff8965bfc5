package geocode

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pramindu123/hazardx-gateway/internal/observability"
)

// CachedGeocoder wraps a Geocoder with an in-memory LRU cache.
type CachedGeocoder struct {
	inner   Geocoder
	cache   *lru.Cache
	metrics *observability.Metrics
}

// NewCachedGeocoder creates a cache decorator around a geocoder.
func NewCachedGeocoder(inner Geocoder, maxEntries int, metrics *observability.Metrics) (*CachedGeocoder, error) {
	cache, err := lru.New(maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create geocode cache: %w", err)
	}
	return &CachedGeocoder{inner: inner, cache: cache, metrics: metrics}, nil
}

// ReverseGeocode serves the point from cache or asks the wrapped geocoder.
func (c *CachedGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (Result, error) {
	key := cacheKey(lat, lng)
	if v, ok := c.cache.Get(key); ok {
		c.metrics.GeocodeCache.WithLabelValues("memory", "hit").Inc()
		return v.(Result), nil
	}
	c.metrics.GeocodeCache.WithLabelValues("memory", "miss").Inc()

	result, err := c.inner.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return result, err
	}
	// Only cache results that name a district so a transient empty answer can be retried.
	if result.Address.DistrictCandidate() != "" {
		c.cache.Add(key, result)
	}
	return result, nil
}

// Len returns the number of cached points.
func (c *CachedGeocoder) Len() int { return c.cache.Len() }
