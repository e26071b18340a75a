package repository

import (
	"time"

	"webhook-ops/internal/model"
)

// CreateAlertOptions holds parameters for inserting a new Alert.
type CreateAlertOptions struct {
	ID            string
	Title         string
	Message       string
	Severity      model.AlertSeverity
	Category      model.AlertCategory
	Source        string
	Metadata      map[string]interface{}
	CreatedBy     string
	AutoDismissAt *time.Time
}

// GetOneAlertOptions holds filter parameters for fetching one alert.
type GetOneAlertOptions struct {
	ID string
}

// ListAlertsOptions holds filter and pagination parameters.
// All non-empty fields are applied as AND conditions.
type ListAlertsOptions struct {
	Status   model.AlertStatus
	Category model.AlertCategory
	Severity model.AlertSeverity
	Limit    int
}
