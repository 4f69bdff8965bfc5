package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/regions"
	"github.com/pramindu123/hazardx-gateway/internal/upstream"
	"github.com/pramindu123/hazardx-gateway/internal/validation"
	"go.uber.org/zap"
)

var reportMessages = validation.Messages{
	"ReportRequest.reporter_name.notblank":          "Full name is required",
	"ReportRequest.reporter_name.letters":           "Name can only contain letters and spaces",
	"ReportRequest.contact_no.phone10":              "Phone number must be exactly 10 digits",
	"ReportRequest.district.notblank":               "Please select a district",
	"ReportRequest.divisional_secretariat.notblank": "Please select a divisional secretariat",
	"ReportRequest.description.notblank":            "Symptoms description is required",
	"ReportRequest.description.mintrim":             "Symptoms should be at least 10 characters long",
}

// ReportService handles public symptom reports and their triage.
type ReportService struct {
	api       ReliefAPI
	resolver  *regions.Resolver
	activity  ActivityRecorder
	validator *validation.Validator
	logger    *zap.SugaredLogger
}

// NewReportService creates a report service
func NewReportService(api ReliefAPI, resolver *regions.Resolver, activity ActivityRecorder, logger *zap.SugaredLogger) *ReportService {
	return &ReportService{
		api:       api,
		resolver:  resolver,
		activity:  activity,
		validator: validation.New(reportMessages),
		logger:    logger,
	}
}

// Submit validates a report and forwards it upstream as Pending.
func (s *ReportService) Submit(ctx context.Context, req models.ReportRequest) (upstream.SymptomReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return upstream.SymptomReport{}, err
	}
	if err := checkRegion(s.resolver, req.District, req.DivisionalSecretariat); err != nil {
		return upstream.SymptomReport{}, err
	}

	report := upstream.SymptomReport{
		ReporterName:          strings.TrimSpace(req.ReporterName),
		ContactNo:             req.ContactNo,
		District:              req.District,
		DivisionalSecretariat: req.DivisionalSecretariat,
		DateTime:              req.DateTime,
		Description:           strings.TrimSpace(req.Description),
		Image:                 req.Image,
		Action:                models.StatusPending,
		Latitude:              req.Latitude,
		Longitude:             req.Longitude,
	}
	if report.DateTime == "" {
		report.DateTime = clock.Now().UTC().Format(time.RFC3339)
	}

	if err := s.api.CreateReport(ctx, report); err != nil {
		return upstream.SymptomReport{}, fmt.Errorf("create report: %w", err)
	}

	s.logger.Infow("Symptom report submitted",
		"district", report.District,
		"division", report.DivisionalSecretariat,
		"has_image", report.Image != "",
	)
	return report, nil
}

// Pending lists the pending reports of a district.
func (s *ReportService) Pending(ctx context.Context, district string) ([]upstream.SymptomReport, error) {
	if strings.TrimSpace(district) == "" {
		return nil, validation.Errors{"district": "district is required"}
	}
	reports, err := s.api.PendingReports(ctx, district)
	if err != nil {
		return nil, fmt.Errorf("pending reports: %w", err)
	}
	if reports == nil {
		reports = []upstream.SymptomReport{}
	}
	return reports, nil
}

// UpdateStatus changes a report's triage status and records who did it.
func (s *ReportService) UpdateStatus(ctx context.Context, reportID int, req models.StatusRequest, actor, district string) error {
	if reportID <= 0 {
		return validation.Errors{"report_id": "report_id must be positive"}
	}
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	if err := s.api.UpdateReportStatus(ctx, upstream.StatusUpdate{ReportID: reportID, Status: req.Status, Actor: actor}); err != nil {
		return fmt.Errorf("update report status: %w", err)
	}

	recordAction(ctx, s.activity, s.logger, &models.ActivityLogEntry{
		ReportID:          &reportID,
		ActivityType:      models.ActivityReportStatus,
		ActionDescription: "Report status set to " + req.Status,
		Actor:             actor,
		District:          district,
	})
	return nil
}

// checkRegion rejects a district/division pair that is not in the hierarchy.
func checkRegion(resolver *regions.Resolver, district, division string) error {
	if !resolver.Contains(district, division) {
		return fmt.Errorf("%w: %q / %q", ErrInvalidRegion, district, division)
	}
	return nil
}
