package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pramindu123/hazardx-gateway/internal/events"
	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/regions"
	"github.com/pramindu123/hazardx-gateway/internal/upstream"
	"github.com/pramindu123/hazardx-gateway/internal/validation"
	"go.uber.org/zap"
)

const (
	// alertActor is the actor name the relief API expects on report status
	// changes made while publishing an alert.
	alertActor = "DMC Officer"

	MsgAlertPublished     = "Alert published!"
	MsgAlertStatusPending = "Alert created, but failed to update report status."
)

var alertMessages = validation.Messages{
	"AlertRequest.alert_type.notblank":             "Please enter an alert type",
	"AlertRequest.district.notblank":               "Please select a district",
	"AlertRequest.divisional_secretariat.notblank": "Please select a divisional secretariat",
}

// AlertService creates and lists disaster alerts.
type AlertService struct {
	api       ReliefAPI
	resolver  *regions.Resolver
	publisher events.Publisher
	activity  ActivityRecorder
	validator *validation.Validator
	logger    *zap.SugaredLogger
}

// NewAlertService creates an alert service
func NewAlertService(api ReliefAPI, resolver *regions.Resolver, publisher events.Publisher, activity ActivityRecorder, logger *zap.SugaredLogger) *AlertService {
	return &AlertService{
		api:       api,
		resolver:  resolver,
		publisher: publisher,
		activity:  activity,
		validator: validation.New(alertMessages),
		logger:    logger,
	}
}

// Create publishes an alert. The upstream create must succeed; event
// publication and the source report's status update are best effort and
// reported in the result.
func (s *AlertService) Create(ctx context.Context, req models.AlertRequest, officer string) (models.AlertResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.AlertResult{}, err
	}
	if err := checkRegion(s.resolver, req.District, req.DivisionalSecretariat); err != nil {
		return models.AlertResult{}, err
	}
	if req.Severity == "" {
		req.Severity = "Medium"
	}

	alert := upstream.NewAlert{
		AlertType:             strings.TrimSpace(req.AlertType),
		District:              req.District,
		DivisionalSecretariat: req.DivisionalSecretariat,
		Severity:              req.Severity,
		Latitude:              req.Latitude,
		Longitude:             req.Longitude,
	}
	if err := s.api.CreateAlert(ctx, alert); err != nil {
		return models.AlertResult{}, fmt.Errorf("create alert: %w", err)
	}

	result := models.AlertResult{AlertCreated: true, StatusUpdated: true, Message: MsgAlertPublished}

	event := events.AlertEvent{
		ID:                    uuid.NewString(),
		AlertType:             alert.AlertType,
		District:              alert.District,
		DivisionalSecretariat: alert.DivisionalSecretariat,
		Severity:              alert.Severity,
		Latitude:              alert.Latitude,
		Longitude:             alert.Longitude,
		ReportID:              req.ReportID,
		IssuedBy:              officer,
		IssuedAt:              clock.Now().UTC(),
	}
	if err := s.publisher.PublishAlert(ctx, event); err != nil {
		s.logger.Errorw("Failed to publish alert event", "event_id", event.ID, "error", err)
	} else {
		result.Published = true
		result.EventID = event.ID
	}

	if req.ReportID > 0 {
		err := s.api.UpdateReportStatus(ctx, upstream.StatusUpdate{
			ReportID: req.ReportID,
			Status:   models.StatusAlertCreated,
			Actor:    alertActor,
		})
		if err != nil {
			s.logger.Errorw("Alert created but report status update failed", "report_id", req.ReportID, "error", err)
			result.StatusUpdated = false
			result.Message = MsgAlertStatusPending
		}
	}

	var reportID *int
	if req.ReportID > 0 {
		reportID = &req.ReportID
	}
	recordAction(ctx, s.activity, s.logger, &models.ActivityLogEntry{
		ReportID:          reportID,
		ActivityType:      models.ActivityAlertCreated,
		ActionDescription: fmt.Sprintf("%s alert (%s) issued for %s / %s", alert.AlertType, alert.Severity, alert.District, alert.DivisionalSecretariat),
		Actor:             officer,
		District:          alert.District,
		Metadata:          event.ID,
	})

	s.logger.Infow("Alert created",
		"type", alert.AlertType,
		"district", alert.District,
		"severity", alert.Severity,
		"report_id", req.ReportID,
		"status_updated", result.StatusUpdated,
	)
	return result, nil
}

// List returns the alerts matching every non-empty filter field exactly.
func (s *AlertService) List(ctx context.Context, f models.AlertFilter) ([]upstream.Alert, error) {
	alerts, err := s.api.Alerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	out := make([]upstream.Alert, 0, len(alerts))
	for _, a := range alerts {
		if matches(f.Type, a.Type) &&
			matches(f.District, a.District) &&
			matches(f.GnDivision, a.GnDivision) &&
			matches(f.Severity, a.Severity) &&
			matches(f.Status, a.Status) {
			out = append(out, a)
		}
	}
	return out, nil
}

// matches reports whether value passes an optional exact-match filter.
func matches(filter, value string) bool {
	return filter == "" || filter == value
}
