package runbook

import (
	"context"

	"webhook-ops/internal/model"
)

// UseCase manages operator-authored runbooks.
type UseCase interface {
	Create(ctx context.Context, input CreateRunbookInput) (model.Runbook, error)
	List(ctx context.Context, input ListRunbooksInput) ([]model.Runbook, error)
	Detail(ctx context.Context, id string) (model.Runbook, error)
	Update(ctx context.Context, input UpdateRunbookInput) (model.Runbook, error)
	Delete(ctx context.Context, id string) error

	// GetActiveBySource returns active runbooks for a webhook source,
	// used by the remediation engine for dispatch.
	GetActiveBySource(ctx context.Context, source string) ([]model.Runbook, error)
}
