package usecase

import (
	"context"

	"github.com/google/uuid"

	"webhook-ops/internal/model"
	"webhook-ops/internal/runbook"
	repo "webhook-ops/internal/runbook/repository"
)

// Create persists a new runbook.
func (uc *implUseCase) Create(ctx context.Context, input runbook.CreateRunbookInput) (model.Runbook, error) {
	if input.Name == "" {
		return model.Runbook{}, runbook.ErrEmptyName
	}
	if input.Source == "" {
		return model.Runbook{}, runbook.ErrEmptySource
	}
	if len(input.Steps) == 0 {
		return model.Runbook{}, runbook.ErrNoSteps
	}

	created, err := uc.repo.CreateRunbook(ctx, repo.CreateRunbookOptions{
		ID:     uuid.New().String(),
		Name:   input.Name,
		Source: input.Source,
		Steps:  input.Steps,
		Active: input.Active,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateRunbook: %v", err)
		return model.Runbook{}, err
	}
	return created, nil
}

// List returns runbooks with the given filters.
func (uc *implUseCase) List(ctx context.Context, input runbook.ListRunbooksInput) ([]model.Runbook, error) {
	runbooks, err := uc.repo.ListRunbooks(ctx, repo.ListRunbooksOptions{
		Source:     input.Source,
		ActiveOnly: input.ActiveOnly,
		Limit:      input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListRunbooks: %v", err)
		return nil, err
	}
	return runbooks, nil
}

// Detail returns a single runbook by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Runbook, error) {
	rb, err := uc.repo.GetOneRunbook(ctx, repo.GetOneRunbookOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneRunbook: %v", err)
		return model.Runbook{}, err
	}
	if rb.ID == "" {
		return model.Runbook{}, runbook.ErrRunbookNotFound
	}
	return rb, nil
}

// Update applies a partial update to a runbook.
func (uc *implUseCase) Update(ctx context.Context, input runbook.UpdateRunbookInput) (model.Runbook, error) {
	current, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return model.Runbook{}, err
	}

	opt := repo.UpdateRunbookOptions{
		ID:     current.ID,
		Name:   current.Name,
		Source: current.Source,
		Steps:  current.Steps,
		Active: current.Active,
	}
	if input.Name != nil {
		opt.Name = *input.Name
	}
	if input.Source != nil {
		opt.Source = *input.Source
	}
	if input.Steps != nil {
		if len(input.Steps) == 0 {
			return model.Runbook{}, runbook.ErrNoSteps
		}
		opt.Steps = input.Steps
	}
	if input.Active != nil {
		opt.Active = *input.Active
	}

	updated, err := uc.repo.UpdateRunbook(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateRunbook: %v", err)
		return model.Runbook{}, err
	}
	if updated.ID == "" {
		return model.Runbook{}, runbook.ErrRunbookNotFound
	}
	return updated, nil
}

// Delete removes a runbook by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteRunbook(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteRunbook: %v", err)
		return err
	}
	return nil
}

// GetActiveBySource returns active runbooks for a webhook source.
func (uc *implUseCase) GetActiveBySource(ctx context.Context, source string) ([]model.Runbook, error) {
	return uc.List(ctx, runbook.ListRunbooksInput{Source: source, ActiveOnly: true})
}
