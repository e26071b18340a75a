package usecase

import (
	"context"

	"webhook-ops/internal/alert"
	repo "webhook-ops/internal/alert/repository"
	"webhook-ops/internal/model"
)

// Dismiss transitions an alert to dismissed. Unknown IDs fail with
// ErrAlertNotFound; dismissing an already-dismissed alert is a no-op.
func (uc *implUseCase) Dismiss(ctx context.Context, sc model.Scope, id string) error {
	a, err := uc.repo.GetOneAlert(ctx, repo.GetOneAlertOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dismiss GetOneAlert: %v", err)
		return err
	}
	if a.ID == "" {
		return alert.ErrAlertNotFound
	}
	if a.Status == model.AlertStatusDismissed {
		return nil
	}

	updated, err := uc.repo.DismissAlert(ctx, id, sc.UserID, uc.now())
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dismiss DismissAlert: %v", err)
		return err
	}
	if updated {
		uc.l.Infof(ctx, "alert %s dismissed by %s", id, sc.UserID)
	}
	return nil
}

// SweepExpired dismisses all active alerts whose auto_dismiss_at has
// passed. Idempotent: a second sweep finds nothing to close.
func (uc *implUseCase) SweepExpired(ctx context.Context) (int, error) {
	count, err := uc.repo.SweepExpired(ctx, uc.now(), model.AutoDismissedBy)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SweepExpired: %v", err)
		return 0, err
	}
	if count > 0 {
		uc.l.Infof(ctx, "expiry sweep dismissed %d alert(s)", count)
	}
	return count, nil
}
