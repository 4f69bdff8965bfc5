package upstream

// Wire types of the relief API. Field names follow its JSON exactly, which is
// not always consistent between endpoints.

// SymptomReport is a public symptom report as stored upstream.
type SymptomReport struct {
	ReportID              int     `json:"report_id,omitempty"`
	ReporterName          string  `json:"reporter_name"`
	ContactNo             string  `json:"contact_no"`
	District              string  `json:"district"`
	DivisionalSecretariat string  `json:"divisional_secretariat"`
	DateTime              string  `json:"date_time"`
	Description           string  `json:"description"`
	Image                 string  `json:"image"`
	Action                string  `json:"action"`
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
}

// StatusUpdate changes the triage status of a symptom report.
type StatusUpdate struct {
	ReportID int    `json:"reportId"`
	Status   string `json:"status"`
	Actor    string `json:"actor"`
}

// NewAlert is the body of Alerts/create.
type NewAlert struct {
	AlertType             string  `json:"alert_type"`
	District              string  `json:"district"`
	DivisionalSecretariat string  `json:"divisional_secretariat"`
	Severity              string  `json:"severity"`
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
}

// Alert is one entry of Alerts/all.
type Alert struct {
	ID          int     `json:"id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	District    string  `json:"district"`
	GnDivision  string  `json:"gnDivision"`
	Severity    string  `json:"severity"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// AidRequest is an aid request as listed by the AidRequest endpoints.
type AidRequest struct {
	AidID                 int     `json:"aid_id"`
	FullName              string  `json:"full_name"`
	ContactNo             string  `json:"contact_no"`
	TypeSupport           string  `json:"type_support"`
	RequestType           string  `json:"request_type"`
	District              string  `json:"district"`
	DivisionalSecretariat string  `json:"divisional_secretariat"`
	Description           string  `json:"description"`
	DateTime              string  `json:"date_time"`
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
	DSOfficer             string  `json:"ds_officer,omitempty"`
	DSContactNo           string  `json:"ds_contact_no,omitempty"`
	ContributionsReceived int     `json:"contributions_received"`
	Resolved              bool    `json:"resolved"`
}

// ResolveAidRequest is the body of AidRequest/resolve.
type ResolveAidRequest struct {
	AidID int    `json:"aid_id"`
	Actor string `json:"actor"`
}

// Contribution is a volunteer contribution.
type Contribution struct {
	ContributionID   int    `json:"contribution_id,omitempty"`
	VolunteerID      int    `json:"volunteer_id"`
	VolunteerName    string `json:"volunteer_name,omitempty"`
	VolunteerContact string `json:"volunteer_contact,omitempty"`
	District         string `json:"district"`
	TypeSupport      string `json:"type_support"`
	Description      string `json:"description"`
	Image            string `json:"image,omitempty"`
	Status           string `json:"status,omitempty"`
}

// ContributionStatus is the body of Contribution/status.
type ContributionStatus struct {
	ContributionID int    `json:"contribution_id"`
	Status         string `json:"status"`
	Actor          string `json:"actor"`
}

type countResponse struct {
	Count int64 `json:"count"`
}
