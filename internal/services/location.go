package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pramindu123/hazardx-gateway/internal/geocode"
	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/observability"
	"github.com/pramindu123/hazardx-gateway/internal/regions"
	"github.com/pramindu123/hazardx-gateway/internal/validation"
	"go.uber.org/zap"
)

// MsgGeocodeFailed is shown when the reverse geocoder cannot be used.
const MsgGeocodeFailed = "Failed to detect district and divisional secretariat from location."

// ErrGeocodeFailed wraps reverse geocoder failures during detection.
var ErrGeocodeFailed = errors.New(MsgGeocodeFailed)

// GeolocationError is a browser geolocation failure reported by the client.
type GeolocationError struct {
	Code int
}

func (e *GeolocationError) Error() string {
	switch e.Code {
	case 1:
		return "Location access denied by user"
	case 2:
		return "Location information unavailable"
	case 3:
		return "Location request timed out"
	default:
		return "Unable to retrieve location"
	}
}

// LocationService answers region lookups and turns device coordinates into
// a form pre-fill.
type LocationService struct {
	resolver  *regions.Resolver
	geocoder  geocode.Geocoder
	validator *validation.Validator
	metrics   *observability.Metrics
	logger    *zap.SugaredLogger
}

// NewLocationService creates a location service
func NewLocationService(resolver *regions.Resolver, geocoder geocode.Geocoder, metrics *observability.Metrics, logger *zap.SugaredLogger) *LocationService {
	return &LocationService{
		resolver:  resolver,
		geocoder:  geocoder,
		validator: validation.New(nil),
		metrics:   metrics,
		logger:    logger,
	}
}

// Districts lists district names in hierarchy order.
func (s *LocationService) Districts() models.DistrictList {
	return models.DistrictList{Districts: s.resolver.Districts()}
}

// District describes a district and its divisions.
func (s *LocationService) District(name string) (models.DistrictInfo, error) {
	divisions := s.resolver.Divisions(name)
	if divisions == nil {
		return models.DistrictInfo{}, fmt.Errorf("district %q: %w", name, ErrNotFound)
	}
	canonical := s.canonicalDistrict(name)
	info := models.DistrictInfo{Name: canonical, Divisions: divisions}
	if c, ok := s.resolver.DistrictCoordinates(canonical); ok {
		info.Coordinates = &c
	}
	return info, nil
}

// Division describes one divisional secretariat of a district.
func (s *LocationService) Division(district, division string) (models.DivisionInfo, error) {
	canonical := s.canonicalDistrict(district)
	name, ok := s.canonicalDivision(canonical, division)
	if !ok {
		return models.DivisionInfo{}, fmt.Errorf("division %q of %q: %w", division, district, ErrNotFound)
	}
	info := models.DivisionInfo{District: canonical, Name: name}
	if c, ok := s.resolver.DivisionCoordinates(name); ok {
		info.Coordinates = &c
	}
	return info, nil
}

// Resolve maps coordinates to a region by bounding box.
func (s *LocationService) Resolve(req models.CoordinatesRequest) (regions.Region, error) {
	if err := s.validator.Struct(req); err != nil {
		return regions.Region{}, err
	}
	region, matched := s.resolver.Locate(*req.Latitude, *req.Longitude)
	pass := "box"
	if !matched {
		pass = string(regions.PassFallback)
	}
	s.metrics.Resolutions.WithLabelValues("coordinates", pass).Inc()
	return region, nil
}

// Detect reverse geocodes the device location and matches the address
// against the hierarchy. An unmatched district is not an error: the
// response asks the user to pick the region manually.
func (s *LocationService) Detect(ctx context.Context, req models.DetectRequest) (models.DetectResponse, error) {
	if req.ErrorCode != 0 {
		return models.DetectResponse{}, &GeolocationError{Code: req.ErrorCode}
	}
	if err := s.validator.Struct(req); err != nil {
		return models.DetectResponse{}, err
	}
	lat, lng := *req.Latitude, *req.Longitude

	res, err := s.geocoder.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		s.logger.Warnw("Reverse geocoding failed", "lat", lat, "lng", lng, "error", err)
		return models.DetectResponse{}, fmt.Errorf("%w: %v", ErrGeocodeFailed, err)
	}

	out := models.DetectResponse{
		DisplayName: res.DisplayName,
		Latitude:    lat,
		Longitude:   lng,
	}

	resolution, err := s.resolver.ResolveAddress(res.Address)
	if errors.Is(err, regions.ErrUnresolved) {
		detected := regions.NormalizeDistrict(res.Address.DistrictCandidate())
		out.Message = fmt.Sprintf("Detected district '%s' not found in options. Please select manually.", detected)
		s.metrics.Resolutions.WithLabelValues("address", "unresolved").Inc()
		s.logger.Infow("Detected district not in hierarchy", "district", detected)
		return out, nil
	}
	if err != nil {
		return models.DetectResponse{}, err
	}

	s.metrics.Resolutions.WithLabelValues("address", string(resolution.Pass)).Inc()

	out.District = resolution.Region.District
	out.DivisionalSecretariat = resolution.Region.DivisionalSecretariat
	out.AutoDetected = true
	out.AutoSelected = resolution.AutoSelected
	out.Match = string(resolution.Pass)
	if resolution.AutoSelected {
		out.Message = fmt.Sprintf("District detected: %s. Please verify if correct.", out.District)
	} else {
		out.Message = fmt.Sprintf("DS detected: %s. Please verify if correct.", out.DivisionalSecretariat)
	}
	return out, nil
}

func (s *LocationService) canonicalDistrict(name string) string {
	for _, d := range s.resolver.Districts() {
		if strings.EqualFold(d, name) {
			return d
		}
	}
	return name
}

func (s *LocationService) canonicalDivision(district, name string) (string, bool) {
	for _, d := range s.resolver.Divisions(district) {
		if strings.EqualFold(d, name) {
			return d, true
		}
	}
	return "", false
}
