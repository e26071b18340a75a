package model

import "time"

// AlertSeverity represents the severity level of an alert
type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityInfo     AlertSeverity = "info"
)

// Valid reports whether the severity is one of the known levels.
func (s AlertSeverity) Valid() bool {
	switch s {
	case AlertSeverityCritical, AlertSeverityWarning, AlertSeverityInfo:
		return true
	}
	return false
}

// AlertCategory represents the subsystem an alert belongs to
type AlertCategory string

const (
	AlertCategoryWebhook  AlertCategory = "webhook"
	AlertCategoryPayment  AlertCategory = "payment"
	AlertCategorySystem   AlertCategory = "system"
	AlertCategoryUser     AlertCategory = "user"
	AlertCategorySecurity AlertCategory = "security"
)

// Valid reports whether the category is one of the known subsystems.
func (c AlertCategory) Valid() bool {
	switch c {
	case AlertCategoryWebhook, AlertCategoryPayment, AlertCategorySystem,
		AlertCategoryUser, AlertCategorySecurity:
		return true
	}
	return false
}

// AlertStatus represents the lifecycle state of an alert
type AlertStatus string

const (
	AlertStatusActive    AlertStatus = "active"
	AlertStatusDismissed AlertStatus = "dismissed"
)

// AutoDismissedBy is recorded as the dismisser when the expiry sweep
// closes an alert.
const AutoDismissedBy = "auto-cleanup"

// Alert is a raised operational condition. Append-only: alerts are
// never deleted, only transitioned active → dismissed exactly once.
type Alert struct {
	ID       string                 `json:"id"`
	Title    string                 `json:"title"`
	Message  string                 `json:"message"`
	Severity AlertSeverity          `json:"severity"`
	Category AlertCategory          `json:"category"`
	Status   AlertStatus            `json:"status"`
	Source   string                 `json:"source,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	CreatedBy   string     `json:"created_by"`
	DismissedAt *time.Time `json:"dismissed_at,omitempty"`
	DismissedBy string     `json:"dismissed_by,omitempty"`

	// AutoDismissAt, when set, makes the expiry sweep close the alert
	// once now >= AutoDismissAt.
	AutoDismissAt *time.Time `json:"auto_dismiss_at,omitempty"`

	// Remediation bookkeeping
	AutoProcessedAt   *time.Time `json:"auto_processed_at,omitempty"`
	LastActionSummary string     `json:"last_action_summary,omitempty"`
}

// RemediationAction is one executed response to an alert.
// Owned by the alert it responds to; immutable once written.
type RemediationAction struct {
	ID          string    `json:"id"`
	AlertID     string    `json:"alert_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	ExecutedAt  time.Time `json:"executed_at"`
}
