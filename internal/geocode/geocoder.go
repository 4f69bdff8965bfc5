// Package geocode turns GPS coordinates into the address records the region
// resolver matches against. Providers are wrapped by in-process and Redis
// caches so repeated detections from the same spot do not hit the provider.
package geocode

import (
	"context"
	"fmt"

	"github.com/pramindu123/hazardx-gateway/internal/regions"
)

// Result is what a reverse geocoder reports for a point.
type Result struct {
	DisplayName string          `json:"display_name,omitempty"`
	Address     regions.Address `json:"address"`
}

// Empty reports whether the provider returned nothing the resolver can use.
func (r Result) Empty() bool {
	return r.Address.DistrictCandidate() == "" && r.Address.AreaCandidate() == ""
}

// Geocoder resolves coordinates to an address record.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (Result, error)
}

// ProviderError is returned when a provider answers with a failure.
type ProviderError struct {
	Provider string
	Status   int
	Message  string
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s API error: status %d: %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Message)
}

func cacheKey(lat, lng float64) string {
	return fmt.Sprintf("rev:%.6f,%.6f", lat, lng)
}

func outcome(res Result, err error) string {
	switch {
	case err != nil:
		return "error"
	case res.Empty():
		return "empty"
	default:
		return "success"
	}
}
