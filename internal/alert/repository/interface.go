package repository

import (
	"context"
	"time"

	"webhook-ops/internal/model"
)

// Repository is the composed interface for the alert data store.
type Repository interface {
	AlertRepository
	ActionLogRepository
}

// AlertRepository defines data access methods for the Alert entity.
// Alerts are append-only: there is no delete, only the dismissed
// transition.
type AlertRepository interface {
	CreateAlert(ctx context.Context, opt CreateAlertOptions) (model.Alert, error)
	GetOneAlert(ctx context.Context, opt GetOneAlertOptions) (model.Alert, error)
	ListAlerts(ctx context.Context, opt ListAlertsOptions) ([]model.Alert, error)

	// DismissAlert transitions an active alert to dismissed. Returns
	// false when the alert was already dismissed (no row updated).
	DismissAlert(ctx context.Context, id, dismissedBy string, at time.Time) (bool, error)

	// SweepExpired dismisses every active alert whose auto_dismiss_at
	// is at or before now. Returns the number of alerts closed.
	SweepExpired(ctx context.Context, now time.Time, dismissedBy string) (int, error)

	// MarkAutoProcessed stamps remediation bookkeeping on the alert.
	MarkAutoProcessed(ctx context.Context, id, summary string, at time.Time) error
}

// ActionLogRepository owns the alert's immutable child action log.
type ActionLogRepository interface {
	AppendActions(ctx context.Context, alertID string, actions []model.RemediationAction) error
	ListActions(ctx context.Context, alertID string) ([]model.RemediationAction, error)
}
