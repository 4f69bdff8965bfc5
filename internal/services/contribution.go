package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/regions"
	"github.com/pramindu123/hazardx-gateway/internal/upstream"
	"github.com/pramindu123/hazardx-gateway/internal/validation"
	"go.uber.org/zap"
)

// ErrNotVolunteer is returned when a contribution is submitted without a volunteer identity.
var ErrNotVolunteer = errors.New("volunteer identity required")

var contributionMessages = validation.Messages{
	"ContributionRequest.district.notblank":      "Please select a district",
	"ContributionRequest.type_support.notblank":  "Please select a type of support",
	"ContributionRequest.other_type.required_if": "Please specify the type of support",
	"ContributionRequest.description.notblank":   "Description is required",
}

// ContributionService handles volunteer contributions and their review.
type ContributionService struct {
	api       ReliefAPI
	resolver  *regions.Resolver
	activity  ActivityRecorder
	validator *validation.Validator
	logger    *zap.SugaredLogger
}

// NewContributionService creates a contribution service
func NewContributionService(api ReliefAPI, resolver *regions.Resolver, activity ActivityRecorder, logger *zap.SugaredLogger) *ContributionService {
	return &ContributionService{
		api:       api,
		resolver:  resolver,
		activity:  activity,
		validator: validation.New(contributionMessages),
		logger:    logger,
	}
}

// Submit forwards a contribution for the given volunteer. A type of
// "Other" is replaced by the free-text other_type.
func (s *ContributionService) Submit(ctx context.Context, volunteerID int, req models.ContributionRequest) (upstream.Contribution, error) {
	if volunteerID <= 0 {
		return upstream.Contribution{}, ErrNotVolunteer
	}
	if err := s.validator.Struct(req); err != nil {
		return upstream.Contribution{}, err
	}
	if s.resolver.Divisions(req.District) == nil {
		return upstream.Contribution{}, validation.Errors{"district": fmt.Sprintf("Unknown district '%s'", req.District)}
	}

	typeSupport := req.TypeSupport
	if typeSupport == "Other" {
		typeSupport = strings.TrimSpace(req.OtherType)
	}

	c := upstream.Contribution{
		VolunteerID: volunteerID,
		District:    req.District,
		TypeSupport: typeSupport,
		Description: strings.TrimSpace(req.Description),
		Image:       req.Image,
	}
	if err := s.api.AddContribution(ctx, c); err != nil {
		return upstream.Contribution{}, fmt.Errorf("add contribution: %w", err)
	}

	s.logger.Infow("Contribution submitted", "volunteer_id", volunteerID, "district", c.District, "type", c.TypeSupport)
	return c, nil
}

// Pending lists contributions awaiting review in a district.
func (s *ContributionService) Pending(ctx context.Context, district string) ([]upstream.Contribution, error) {
	if strings.TrimSpace(district) == "" {
		return nil, validation.Errors{"district": "district is required"}
	}
	list, err := s.api.PendingContributions(ctx, district)
	if err != nil {
		return nil, fmt.Errorf("pending contributions: %w", err)
	}
	if list == nil {
		list = []upstream.Contribution{}
	}
	return list, nil
}

// Review approves or rejects a contribution.
func (s *ContributionService) Review(ctx context.Context, contributionID int, status, actor, district string) error {
	if status != models.ContributionApproved && status != models.ContributionRejected {
		return validation.Errors{"status": "status must be one of: Approved, Rejected"}
	}
	err := s.api.SetContributionStatus(ctx, upstream.ContributionStatus{
		ContributionID: contributionID,
		Status:         status,
		Actor:          actor,
	})
	if err != nil {
		return fmt.Errorf("set contribution %d status: %w", contributionID, err)
	}

	recordAction(ctx, s.activity, s.logger, &models.ActivityLogEntry{
		ActivityType:      models.ActivityContributionReviewed,
		ActionDescription: fmt.Sprintf("Contribution %d %s", contributionID, strings.ToLower(status)),
		Actor:             actor,
		District:          district,
		Metadata:          fmt.Sprintf("contribution_id=%d", contributionID),
	})
	return nil
}
