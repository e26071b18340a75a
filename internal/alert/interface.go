package alert

import (
	"context"

	"webhook-ops/internal/model"
)

// UseCase manages the append-only alert store.
type UseCase interface {
	// Create raises a new alert. AutoDismissMinutes > 0 schedules an
	// automatic dismissal.
	Create(ctx context.Context, sc model.Scope, input CreateAlertInput) (model.Alert, error)

	// List returns alerts newest-first with optional filters.
	List(ctx context.Context, input ListAlertsInput) ([]model.Alert, error)

	// Detail returns one alert with its remediation action log.
	Detail(ctx context.Context, id string) (DetailAlertOutput, error)

	// Dismiss transitions an alert to dismissed. Idempotent: dismissing
	// an already-dismissed alert is a no-op.
	Dismiss(ctx context.Context, sc model.Scope, id string) error

	// SweepExpired dismisses all active alerts whose auto_dismiss_at
	// has passed, as "auto-cleanup". Returns how many were closed.
	SweepExpired(ctx context.Context) (int, error)
}
