// Package services holds the business logic behind each screen of the
// application. Services validate input, resolve regions and call the
// upstream relief API; handlers only translate HTTP.
package services

import (
	"context"
	"errors"

	"github.com/pramindu123/hazardx-gateway/internal/upstream"
)

var (
	// ErrNotFound is returned when a named district, division or record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRegion is returned when a district/division pair is not in the hierarchy.
	ErrInvalidRegion = errors.New("divisional secretariat does not belong to district")
)

// ReliefAPI is the upstream relief API as used by the services.
type ReliefAPI interface {
	CreateReport(ctx context.Context, r upstream.SymptomReport) error
	PendingReports(ctx context.Context, district string) ([]upstream.SymptomReport, error)
	UpdateReportStatus(ctx context.Context, u upstream.StatusUpdate) error

	CreateAlert(ctx context.Context, a upstream.NewAlert) error
	Alerts(ctx context.Context) ([]upstream.Alert, error)

	ApprovedAidRequests(ctx context.Context) ([]upstream.AidRequest, error)
	OngoingAidRequests(ctx context.Context) ([]upstream.AidRequest, error)
	ResolveAidRequest(ctx context.Context, r upstream.ResolveAidRequest) error

	AddContribution(ctx context.Context, c upstream.Contribution) error
	PendingContributions(ctx context.Context, district string) ([]upstream.Contribution, error)
	SetContributionStatus(ctx context.Context, s upstream.ContributionStatus) error

	ActiveVolunteersCount(ctx context.Context) (int64, error)
	AlertsSentCount(ctx context.Context) (int64, error)
	TotalAidRequestsCount(ctx context.Context) (int64, error)
}

var _ ReliefAPI = (*upstream.Client)(nil)
