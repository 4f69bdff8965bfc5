package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pramindu123/hazardx-gateway/internal/observability"
	"github.com/pramindu123/hazardx-gateway/internal/regions"
	"go.uber.org/zap"
)

// DefaultNominatimURL is the public OpenStreetMap Nominatim endpoint.
const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

// NominatimClient implements Geocoder against an OpenStreetMap Nominatim server.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *zap.SugaredLogger
}

// NewNominatimClient creates a Nominatim client. Nominatim's usage policy
// requires an identifying User-Agent on every request.
func NewNominatimClient(baseURL, userAgent string, timeout time.Duration, metrics *observability.Metrics, logger *zap.SugaredLogger) *NominatimClient {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	return &NominatimClient{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    metrics,
		logger:     logger,
	}
}

// ReverseGeocode looks up the address at a point.
func (c *NominatimClient) ReverseGeocode(ctx context.Context, lat, lng float64) (Result, error) {
	start := time.Now()
	res, err := c.reverse(ctx, lat, lng)
	c.metrics.GeocodeAPIDuration.WithLabelValues("nominatim").Observe(time.Since(start).Seconds())
	c.metrics.GeocodeRequests.WithLabelValues("nominatim", outcome(res, err)).Inc()
	if err != nil {
		c.logger.Warnw("Nominatim reverse lookup failed", "lat", lat, "lng", lng, "error", err)
	}
	return res, err
}

func (c *NominatimClient) reverse(ctx context.Context, lat, lng float64) (Result, error) {
	params := url.Values{
		"format":         {"json"},
		"lat":            {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":            {strconv.FormatFloat(lng, 'f', -1, 64)},
		"addressdetails": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Result{}, &ProviderError{Provider: "nominatim", Status: resp.StatusCode, Message: string(body)}
	}

	var nr nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if nr.Error != "" {
		return Result{}, &ProviderError{Provider: "nominatim", Message: nr.Error}
	}

	return Result{DisplayName: nr.DisplayName, Address: nr.Address}, nil
}

// Nominatim API response types. The address keys line up with regions.Address.

type nominatimResponse struct {
	DisplayName string          `json:"display_name"`
	Address     regions.Address `json:"address"`
	Error       string          `json:"error"`
}
