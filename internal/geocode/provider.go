package geocode

import (
	"fmt"
	"strings"
	"time"

	"github.com/pramindu123/hazardx-gateway/internal/observability"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Options selects and tunes the geocoding stack.
type Options struct {
	Provider           string // "nominatim" or "google"
	NominatimURL       string
	NominatimUserAgent string
	GoogleAPIKey       string
	Timeout            time.Duration
	CacheSize          int
	Redis              redis.Cmdable // nil disables the shared cache
	RedisTTL           time.Duration
}

// New builds the provider named in opts and layers the caches on top:
// LRU in front of Redis in front of the provider.
func New(opts Options, metrics *observability.Metrics, logger *zap.SugaredLogger) (Geocoder, error) {
	var g Geocoder
	switch strings.ToLower(opts.Provider) {
	case "", "nominatim":
		g = NewNominatimClient(opts.NominatimURL, opts.NominatimUserAgent, opts.Timeout, metrics, logger)
	case "google":
		gc, err := NewGoogleClient(opts.GoogleAPIKey, opts.Timeout, metrics, logger)
		if err != nil {
			return nil, err
		}
		g = gc
	default:
		return nil, fmt.Errorf("unknown geocoder provider %q", opts.Provider)
	}

	if opts.Redis != nil {
		g = NewRedisCache(g, opts.Redis, opts.RedisTTL, metrics, logger)
	}
	if opts.CacheSize > 0 {
		cached, err := NewCachedGeocoder(g, opts.CacheSize, metrics)
		if err != nil {
			return nil, err
		}
		g = cached
	}
	return g, nil
}
