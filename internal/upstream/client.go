// Package upstream is the client for the relief API that owns reports,
// alerts, aid requests and contributions. The gateway never stores those
// records itself.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pramindu123/hazardx-gateway/internal/observability"
	"go.uber.org/zap"
)

// APIError is returned when the relief API answers with a non-2xx status.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream API error: status %d: %s", e.Status, e.Body)
}

// Client talks to the relief API. Reads are retried on transport errors and
// 5xx; writes are sent once.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	metrics *observability.Metrics
	logger  *zap.SugaredLogger
}

// NewClient creates a relief API client.
func NewClient(baseURL string, timeout time.Duration, retries int, metrics *observability.Metrics, logger *zap.SugaredLogger) *Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient.Timeout = timeout
	rc.RetryMax = retries
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.Logger = leveledLogger{logger}
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.CheckRetry = retryReads

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
		metrics: metrics,
		logger:  logger,
	}
}

// CreateReport submits a symptom report.
func (c *Client) CreateReport(ctx context.Context, r SymptomReport) error {
	return c.do(ctx, http.MethodPost, "/Symptoms/create", r, nil)
}

// PendingReports lists pending symptom reports for a district.
func (c *Client) PendingReports(ctx context.Context, district string) ([]SymptomReport, error) {
	var out []SymptomReport
	path := "/Symptoms/pendingReportsByDistrict?district=" + url.QueryEscape(district)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateReportStatus changes the triage status of a report.
func (c *Client) UpdateReportStatus(ctx context.Context, u StatusUpdate) error {
	return c.do(ctx, http.MethodPost, "/Symptoms/updateStatus", u, nil)
}

// CreateAlert publishes an alert.
func (c *Client) CreateAlert(ctx context.Context, a NewAlert) error {
	return c.do(ctx, http.MethodPost, "/Alerts/create", a, nil)
}

// Alerts lists every alert.
func (c *Client) Alerts(ctx context.Context) ([]Alert, error) {
	var out []Alert
	if err := c.do(ctx, http.MethodGet, "/Alerts/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApprovedAidRequests lists aid requests approved by the DMC.
func (c *Client) ApprovedAidRequests(ctx context.Context) ([]AidRequest, error) {
	var out []AidRequest
	if err := c.do(ctx, http.MethodGet, "/AidRequest/dmc-approved", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OngoingAidRequests lists aid requests that are still open.
func (c *Client) OngoingAidRequests(ctx context.Context) ([]AidRequest, error) {
	var out []AidRequest
	if err := c.do(ctx, http.MethodGet, "/AidRequest/ongoing", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveAidRequest marks an aid request resolved.
func (c *Client) ResolveAidRequest(ctx context.Context, r ResolveAidRequest) error {
	return c.do(ctx, http.MethodPost, "/AidRequest/resolve", r, nil)
}

// AddContribution records a volunteer contribution.
func (c *Client) AddContribution(ctx context.Context, contrib Contribution) error {
	return c.do(ctx, http.MethodPost, "/Contribution/add", contrib, nil)
}

// PendingContributions lists contributions awaiting approval in a district.
func (c *Client) PendingContributions(ctx context.Context, district string) ([]Contribution, error) {
	var out []Contribution
	path := "/Contribution/pending?district=" + url.QueryEscape(district)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetContributionStatus approves or rejects a contribution.
func (c *Client) SetContributionStatus(ctx context.Context, s ContributionStatus) error {
	return c.do(ctx, http.MethodPost, "/Contribution/status", s, nil)
}

// ActiveVolunteersCount returns the number of active volunteers.
func (c *Client) ActiveVolunteersCount(ctx context.Context) (int64, error) {
	return c.count(ctx, "/active-volunteers-count")
}

// AlertsSentCount returns the number of alerts sent.
func (c *Client) AlertsSentCount(ctx context.Context) (int64, error) {
	return c.count(ctx, "/alerts-sent-count")
}

// TotalAidRequestsCount returns the number of aid requests handled.
func (c *Client) TotalAidRequestsCount(ctx context.Context) (int64, error) {
	return c.count(ctx, "/total-aid-requests-count")
}

func (c *Client) count(ctx context.Context, path string) (int64, error) {
	var out countResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	endpoint := path
	if i := strings.IndexByte(endpoint, '?'); i >= 0 {
		endpoint = endpoint[:i]
	}

	err := c.roundTrip(ctx, method, path, body, out)
	result := "success"
	if err != nil {
		result = "error"
		c.logger.Warnw("Relief API call failed", "method", method, "endpoint", endpoint, "error", err)
	}
	c.metrics.UpstreamRequests.WithLabelValues(endpoint, result).Inc()
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody interface{}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = b
	}

	if method != http.MethodGet {
		ctx = context.WithValue(ctx, sendOnceKey{}, true)
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: string(bytes.TrimSpace(b))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

type sendOnceKey struct{}

// retryReads applies the default policy to reads only. A create that reached
// the relief API may already be committed when a 5xx or timeout comes back.
func retryReads(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if once, _ := ctx.Value(sendOnceKey{}).(bool); once {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// leveledLogger adapts zap to retryablehttp.LeveledLogger.
type leveledLogger struct {
	l *zap.SugaredLogger
}

func (z leveledLogger) Error(msg string, kv ...interface{}) { z.l.Errorw(msg, kv...) }
func (z leveledLogger) Info(msg string, kv ...interface{})  { z.l.Debugw(msg, kv...) }
func (z leveledLogger) Debug(msg string, kv ...interface{}) { z.l.Debugw(msg, kv...) }
func (z leveledLogger) Warn(msg string, kv ...interface{})  { z.l.Warnw(msg, kv...) }
