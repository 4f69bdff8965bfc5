// Package models defines the request and response records of the gateway API.
// Upstream wire types live in package upstream; these are the shapes the
// front-end sends and receives.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pramindu123/hazardx-gateway/internal/regions"
	"github.com/pramindu123/hazardx-gateway/internal/upstream"
)

// Report triage statuses.
const (
	StatusPending      = "Pending"
	StatusAlertCreated = "AlertCreated"
	StatusDismissed    = "Dismissed"
)

// Contribution review outcomes.
const (
	ContributionApproved = "Approved"
	ContributionRejected = "Rejected"
)

// Activity types recorded in the activity log.
const (
	ActivityReportStatus         = "report_status"
	ActivityAlertCreated         = "alert_created"
	ActivityAidResolved          = "aid_resolved"
	ActivityContributionReviewed = "contribution_reviewed"
)

// --- Location ---

// CoordinatesRequest is the body of POST /location/resolve.
type CoordinatesRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// DetectRequest is the body of POST /location/detect. A non-zero ErrorCode
// carries a failed browser geolocation (1 denied, 2 unavailable, 3 timeout).
type DetectRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	ErrorCode int      `json:"error_code,omitempty"`
}

// DetectResponse is the form pre-fill produced from a device location.
type DetectResponse struct {
	District              string  `json:"district"`
	DivisionalSecretariat string  `json:"divisional_secretariat"`
	AutoDetected          bool    `json:"auto_detected"`
	AutoSelected          bool    `json:"auto_selected"`
	Match                 string  `json:"match,omitempty"`
	Message               string  `json:"message"`
	DisplayName           string  `json:"display_name,omitempty"`
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
}

// DistrictList is the response of GET /regions.
type DistrictList struct {
	Districts []string `json:"districts"`
}

// DistrictInfo describes one district and its divisional secretariats.
type DistrictInfo struct {
	Name        string               `json:"name"`
	Coordinates *regions.Coordinates `json:"coordinates,omitempty"`
	Divisions   []string             `json:"divisions"`
}

// DivisionInfo describes one divisional secretariat.
type DivisionInfo struct {
	District    string               `json:"district"`
	Name        string               `json:"name"`
	Coordinates *regions.Coordinates `json:"coordinates,omitempty"`
}

// --- Symptom reports ---

// ReportRequest is a public symptom report submission.
type ReportRequest struct {
	ReporterName          string  `json:"reporter_name" validate:"notblank,letters"`
	ContactNo             string  `json:"contact_no" validate:"phone10"`
	District              string  `json:"district" validate:"notblank"`
	DivisionalSecretariat string  `json:"divisional_secretariat" validate:"notblank"`
	DateTime              string  `json:"date_time,omitempty"`
	Description           string  `json:"description" validate:"notblank,mintrim=10"`
	Image                 string  `json:"image,omitempty"`
	Latitude              float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude             float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// StatusRequest changes a report's triage status.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending AlertCreated Dismissed"`
}

// --- Alerts ---

// AlertRequest creates an alert, usually from a pending report.
type AlertRequest struct {
	ReportID              int     `json:"report_id,omitempty" validate:"gte=0"`
	AlertType             string  `json:"alert_type" validate:"notblank"`
	District              string  `json:"district" validate:"notblank"`
	DivisionalSecretariat string  `json:"divisional_secretariat" validate:"notblank"`
	Severity              string  `json:"severity" validate:"omitempty,oneof=High Medium Low"`
	Latitude              float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude             float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// AlertResult reports each step of alert creation. Steps after the upstream
// create may fail without undoing it.
type AlertResult struct {
	AlertCreated  bool   `json:"alert_created"`
	Published     bool   `json:"published"`
	StatusUpdated bool   `json:"status_updated"`
	EventID       string `json:"event_id,omitempty"`
	Message       string `json:"message"`
}

// AlertFilter narrows the alert list. Empty fields match everything.
type AlertFilter struct {
	Type       string
	District   string
	GnDivision string
	Severity   string
	Status     string
}

// --- Aid requests ---

// AidFilter narrows and pages the approved aid request list.
type AidFilter struct {
	Type                  string
	District              string
	DivisionalSecretariat string
	Page                  int
}

// AidRequestPage is one page of filtered aid requests.
type AidRequestPage struct {
	Items      []upstream.AidRequest `json:"items"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalItems int                   `json:"total_items"`
	TotalPages int                   `json:"total_pages"`
	// Types are the distinct support types across all approved requests,
	// for the filter drop-down.
	Types []string `json:"types"`
}

// --- Contributions ---

// ContributionRequest is a volunteer contribution submission.
type ContributionRequest struct {
	District    string `json:"district" validate:"notblank"`
	TypeSupport string `json:"type_support" validate:"notblank"`
	OtherType   string `json:"other_type,omitempty" validate:"required_if=TypeSupport Other"`
	Description string `json:"description" validate:"notblank"`
	Image       string `json:"image,omitempty"`
}

// --- Dashboard ---

// DashboardStats are the headline counters of the home page.
type DashboardStats struct {
	ActiveVolunteers int64 `json:"active_volunteers"`
	AlertsSent       int64 `json:"alerts_sent"`
	TotalAidRequests int64 `json:"total_aid_requests"`
}

// MapMarker is one point on the disaster map.
type MapMarker struct {
	Kind                  string  `json:"kind"` // "aid" | "alert"
	ID                    int     `json:"id"`
	Title                 string  `json:"title"`
	District              string  `json:"district"`
	DivisionalSecretariat string  `json:"divisional_secretariat,omitempty"`
	Severity              string  `json:"severity,omitempty"`
	Lat                   float64 `json:"lat"`
	Lng                   float64 `json:"lng"`
	Approximate           bool    `json:"approximate,omitempty"`
}

// Dashboard is the cached home page snapshot.
type Dashboard struct {
	Stats     DashboardStats `json:"stats"`
	Markers   []MapMarker    `json:"markers"`
	UpdatedAt time.Time      `json:"updated_at"`
	Stale     bool           `json:"stale,omitempty"`
}

// --- Activity log ---

// ActivityLog is an officer action kept for accountability.
type ActivityLog struct {
	ID                uuid.UUID `json:"id" db:"id"`
	ReportID          *int      `json:"report_id,omitempty" db:"report_id"`
	ActivityType      string    `json:"activity_type" db:"activity_type"`
	ActionDescription string    `json:"action_description" db:"action_description"`
	Actor             string    `json:"actor" db:"actor"`
	District          string    `json:"district,omitempty" db:"district"`
	Metadata          string    `json:"metadata,omitempty" db:"metadata"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// ActivityLogEntry is an action to record.
type ActivityLogEntry struct {
	ReportID          *int
	ActivityType      string
	ActionDescription string
	Actor             string
	District          string
	Metadata          string
}

// --- Health ---

// HealthStatus represents the server health check response
type HealthStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime,omitempty"`
	Database string `json:"database,omitempty"`
	Redis    string `json:"redis,omitempty"`
}
