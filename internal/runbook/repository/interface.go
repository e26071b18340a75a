package repository

import (
	"context"

	"webhook-ops/internal/model"
)

// Repository is the composed interface for the runbook data store.
type Repository interface {
	RunbookRepository
}

// RunbookRepository defines all data access methods for Runbook.
type RunbookRepository interface {
	CreateRunbook(ctx context.Context, opt CreateRunbookOptions) (model.Runbook, error)
	GetOneRunbook(ctx context.Context, opt GetOneRunbookOptions) (model.Runbook, error)
	ListRunbooks(ctx context.Context, opt ListRunbooksOptions) ([]model.Runbook, error)
	UpdateRunbook(ctx context.Context, opt UpdateRunbookOptions) (model.Runbook, error)
	DeleteRunbook(ctx context.Context, id string) error
}
