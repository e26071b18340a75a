package alert

import "webhook-ops/internal/model"

// --- UseCase Inputs ---

// CreateAlertInput holds the fields of a new alert.
type CreateAlertInput struct {
	Title              string
	Message            string
	Severity           model.AlertSeverity
	Category           model.AlertCategory
	Source             string
	Metadata           map[string]interface{}
	AutoDismissMinutes int // 0 = never auto-dismiss
}

// ListAlertsInput filters the alert listing.
type ListAlertsInput struct {
	Status   model.AlertStatus
	Category model.AlertCategory
	Severity model.AlertSeverity
	Limit    int
}

// --- UseCase Outputs ---

// DetailAlertOutput is one alert with its action log.
type DetailAlertOutput struct {
	Alert   model.Alert
	Actions []model.RemediationAction
}
