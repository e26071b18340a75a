package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"webhook-ops/internal/alert"
	repo "webhook-ops/internal/alert/repository"
	"webhook-ops/internal/model"
)

// Create raises a new alert.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input alert.CreateAlertInput) (model.Alert, error) {
	if input.Title == "" {
		return model.Alert{}, alert.ErrEmptyTitle
	}
	if !input.Severity.Valid() {
		return model.Alert{}, alert.ErrInvalidSeverity
	}
	if !input.Category.Valid() {
		return model.Alert{}, alert.ErrInvalidCategory
	}

	var autoDismissAt *time.Time
	if input.AutoDismissMinutes > 0 {
		t := uc.now().Add(time.Duration(input.AutoDismissMinutes) * time.Minute)
		autoDismissAt = &t
	}

	created, err := uc.repo.CreateAlert(ctx, repo.CreateAlertOptions{
		ID:            uuid.New().String(),
		Title:         input.Title,
		Message:       input.Message,
		Severity:      input.Severity,
		Category:      input.Category,
		Source:        input.Source,
		Metadata:      input.Metadata,
		CreatedBy:     sc.UserID,
		AutoDismissAt: autoDismissAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateAlert: %v", err)
		return model.Alert{}, err
	}

	uc.l.Infof(ctx, "alert raised: %s [%s/%s] %s", created.ID, created.Severity, created.Category, created.Title)
	return created, nil
}
