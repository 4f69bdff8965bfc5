package geocode

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pramindu123/hazardx-gateway/internal/observability"
	"github.com/pramindu123/hazardx-gateway/internal/regions"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

// GoogleClient implements Geocoder with the Google Maps Geocoding API.
type GoogleClient struct {
	client  *maps.Client
	metrics *observability.Metrics
	logger  *zap.SugaredLogger
}

// GoogleOption customises the underlying maps client.
type GoogleOption = maps.ClientOption

// NewGoogleClient creates a Google geocoder. Extra options are passed through
// to maps.NewClient after the API key and timeout.
func NewGoogleClient(apiKey string, timeout time.Duration, metrics *observability.Metrics, logger *zap.SugaredLogger, opts ...GoogleOption) (*GoogleClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google maps API key is empty")
	}
	options := append([]maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: timeout}),
	}, opts...)

	c, err := maps.NewClient(options...)
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &GoogleClient{client: c, metrics: metrics, logger: logger}, nil
}

// ReverseGeocode looks up the address at a point.
func (c *GoogleClient) ReverseGeocode(ctx context.Context, lat, lng float64) (Result, error) {
	start := time.Now()
	res, err := c.reverse(ctx, lat, lng)
	c.metrics.GeocodeAPIDuration.WithLabelValues("google").Observe(time.Since(start).Seconds())
	c.metrics.GeocodeRequests.WithLabelValues("google", outcome(res, err)).Inc()
	if err != nil {
		c.logger.Warnw("Google reverse lookup failed", "lat", lat, "lng", lng, "error", err)
	}
	return res, err
}

func (c *GoogleClient) reverse(ctx context.Context, lat, lng float64) (Result, error) {
	results, err := c.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil {
		return Result{}, &ProviderError{Provider: "google", Message: err.Error()}
	}
	if len(results) == 0 {
		return Result{}, nil
	}

	// The first result is the most specific; later ones fill gaps it leaves.
	var addr regions.Address
	for _, r := range results {
		for _, comp := range r.AddressComponents {
			applyComponent(&addr, comp)
		}
	}
	return Result{DisplayName: results[0].FormattedAddress, Address: addr}, nil
}

// applyComponent copies a Google address component onto the matching
// Nominatim-style field unless that field is already set.
func applyComponent(addr *regions.Address, comp maps.AddressComponent) {
	for _, t := range comp.Types {
		var field *string
		switch t {
		case "administrative_area_level_2":
			field = &addr.District
		case "sublocality", "sublocality_level_1":
			field = &addr.Suburb
		case "locality":
			field = &addr.Town
		case "neighborhood":
			field = &addr.Neighbourhood
		case "administrative_area_level_3":
			field = &addr.Municipality
		case "postal_code":
			field = &addr.Postcode
		default:
			continue
		}
		if *field == "" {
			*field = comp.LongName
		}
		return
	}
}
