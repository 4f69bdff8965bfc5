package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/upstream"
	"go.uber.org/zap"
)

// AidPageSize is the number of aid requests per page on the home screen.
const AidPageSize = 6

// AidService lists and resolves aid requests.
type AidService struct {
	api      ReliefAPI
	activity ActivityRecorder
	logger   *zap.SugaredLogger
}

// NewAidService creates an aid request service
func NewAidService(api ReliefAPI, activity ActivityRecorder, logger *zap.SugaredLogger) *AidService {
	return &AidService{api: api, activity: activity, logger: logger}
}

// Approved returns one page of approved aid requests. The type filter
// matches either type_support or request_type. A page past the end of a
// non-empty result resets to the first page.
func (s *AidService) Approved(ctx context.Context, f models.AidFilter) (models.AidRequestPage, error) {
	all, err := s.api.ApprovedAidRequests(ctx)
	if err != nil {
		return models.AidRequestPage{}, fmt.Errorf("approved aid requests: %w", err)
	}

	filtered := make([]upstream.AidRequest, 0, len(all))
	for _, r := range all {
		if f.Type != "" && r.TypeSupport != f.Type && r.RequestType != f.Type {
			continue
		}
		if !matches(f.District, r.District) || !matches(f.DivisionalSecretariat, r.DivisionalSecretariat) {
			continue
		}
		filtered = append(filtered, r)
	}

	page := paginate(filtered, f.Page, AidPageSize)
	page.Types = supportTypes(all)
	return page, nil
}

// Ongoing lists unresolved aid requests, limited to district when set.
func (s *AidService) Ongoing(ctx context.Context, district string) ([]upstream.AidRequest, error) {
	all, err := s.api.OngoingAidRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("ongoing aid requests: %w", err)
	}
	out := make([]upstream.AidRequest, 0, len(all))
	for _, r := range all {
		if r.Resolved || !matches(district, r.District) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Resolve marks an aid request as resolved.
func (s *AidService) Resolve(ctx context.Context, aidID int, actor, district string) error {
	if err := s.api.ResolveAidRequest(ctx, upstream.ResolveAidRequest{AidID: aidID, Actor: actor}); err != nil {
		return fmt.Errorf("resolve aid request %d: %w", aidID, err)
	}
	recordAction(ctx, s.activity, s.logger, &models.ActivityLogEntry{
		ActivityType:      models.ActivityAidResolved,
		ActionDescription: fmt.Sprintf("Aid request %d marked as resolved", aidID),
		Actor:             actor,
		District:          district,
		Metadata:          fmt.Sprintf("aid_id=%d", aidID),
	})
	s.logger.Infow("Aid request resolved", "aid_id", aidID, "actor", actor)
	return nil
}

func paginate(items []upstream.AidRequest, page, size int) models.AidRequestPage {
	total := len(items)
	totalPages := (total + size - 1) / size
	if page < 1 || (page > totalPages && total > 0) {
		page = 1
	}

	// An empty list echoes the requested page; only a page in range is
	// multiplied out so a huge page number cannot overflow the offset.
	start, end := total, total
	if page <= totalPages {
		start = (page - 1) * size
		end = min(start+size, total)
	}

	return models.AidRequestPage{
		Items:      items[start:end],
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

func supportTypes(requests []upstream.AidRequest) []string {
	seen := map[string]bool{}
	types := []string{}
	for _, r := range requests {
		t := r.TypeSupport
		if t == "" {
			t = r.RequestType
		}
		if t != "" && !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	sort.Strings(types)
	return types
}
