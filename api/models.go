package api

import "time"

// User is the API representation of a platform account.
type User struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	Role     string  `json:"role"`
	Active   *bool   `json:"is_active,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// UserStats mirrors GET /users/stats/overview.
type UserStats struct {
	TotalUsers    int `json:"total_users"`
	ActiveUsers   int `json:"active_users"`
	InactiveUsers int `json:"inactive_users"`
	UsersByRole   struct {
		Admin    int `json:"admin"`
		Agronome int `json:"agronome"`
		Eleveur  int `json:"eleveur"`
	} `json:"users_by_role"`
}

// Cow is a monitored animal.
type Cow struct {
	ID          int64    `json:"id"`
	TagID       string   `json:"tag_id"`
	Name        string   `json:"name"`
	Breed       string   `json:"breed"`
	BirthDate   string   `json:"birth_date"`
	Weight      *float64 `json:"weight,omitempty"`
	HealthScore *float64 `json:"health_score,omitempty"`
	Active      *bool    `json:"is_active,omitempty"`
	PhotoURL    *string  `json:"photo_url,omitempty"`
	Notes       *string  `json:"notes,omitempty"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CowPage is the paginated cow listing.
type CowPage struct {
	Items    []Cow `json:"items"`
	Total    int   `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// HealthEvent is one entry of a cow's health history.
type HealthEvent struct {
	ID        int64     `json:"id"`
	CowID     int64     `json:"cow_id"`
	EventType string    `json:"event_type"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

// Alert severities and statuses as emitted by the API (lower case on the
// wire, unlike identity roles).
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"

	AlertStatusNew          = "new"
	AlertStatusAcknowledged = "acknowledged"
	AlertStatusResolved     = "resolved"
)

// Alert is a health alert raised for a cow.
type Alert struct {
	ID              int64      `json:"id"`
	CowID           int64      `json:"cow_id"`
	AlertType       string     `json:"alert_type"`
	Severity        string     `json:"severity"`
	Status          string     `json:"status"`
	Message         string     `json:"message"`
	ResolutionNotes *string    `json:"resolution_notes,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

// AlertFilters narrows an alert listing. Zero values are omitted.
type AlertFilters struct {
	Status   string
	Severity string
	CowID    int64
}

// Measure is one sensor reading for a cow.
type Measure struct {
	ID            int64     `json:"id"`
	CowID         int64     `json:"cow_id"`
	Temperature   float64   `json:"temperature"`
	HeartRate     int       `json:"heart_rate"`
	Rumination    float64   `json:"rumination"`
	ActivityLevel float64   `json:"activity_level"`
	MeasuredAt    time.Time `json:"measured_at"`
}

// MeasurePage is the paginated measure listing.
type MeasurePage struct {
	Items    []Measure `json:"items"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}

// MeasureStats aggregates readings over a period.
type MeasureStats struct {
	CowID  int64   `json:"cow_id"`
	Period string  `json:"period"`
	Avg    float64 `json:"avg"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// GraphPoint is one sample on a measure graph.
type GraphPoint struct {
	At    time.Time `json:"at"`
	Value float64   `json:"value"`
}

// GraphData is the series for one parameter over a period.
type GraphData struct {
	CowID     int64        `json:"cow_id"`
	Parameter string       `json:"parameter"`
	Period    string       `json:"period"`
	Points    []GraphPoint `json:"points"`
}
