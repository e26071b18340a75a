package usecase

import (
	"context"

	"webhook-ops/internal/alert"
	repo "webhook-ops/internal/alert/repository"
	"webhook-ops/internal/model"
)

// List returns alerts newest-first with the given filters.
func (uc *implUseCase) List(ctx context.Context, input alert.ListAlertsInput) ([]model.Alert, error) {
	alerts, err := uc.repo.ListAlerts(ctx, repo.ListAlertsOptions{
		Status:   input.Status,
		Category: input.Category,
		Severity: input.Severity,
		Limit:    input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListAlerts: %v", err)
		return nil, err
	}
	return alerts, nil
}

// Detail returns one alert with its remediation action log.
func (uc *implUseCase) Detail(ctx context.Context, id string) (alert.DetailAlertOutput, error) {
	a, err := uc.repo.GetOneAlert(ctx, repo.GetOneAlertOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneAlert: %v", err)
		return alert.DetailAlertOutput{}, err
	}
	if a.ID == "" {
		return alert.DetailAlertOutput{}, alert.ErrAlertNotFound
	}

	actions, err := uc.repo.ListActions(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail ListActions: %v", err)
		return alert.DetailAlertOutput{}, err
	}

	return alert.DetailAlertOutput{Alert: a, Actions: actions}, nil
}
