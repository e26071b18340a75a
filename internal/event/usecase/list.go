package usecase

import (
	"context"

	"webhook-ops/internal/event"
	repo "webhook-ops/internal/event/repository"
	"webhook-ops/internal/model"
)

// GetRecent returns recorded events newest-first.
func (uc *implUseCase) GetRecent(ctx context.Context, input event.ListEventsInput) ([]model.InboundEvent, error) {
	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		Source:   input.Source,
		Verified: input.Verified,
		Limit:    input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetRecent ListEvents: %v", err)
		return nil, err
	}
	return events, nil
}

// Detail returns a single recorded event by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.InboundEvent, error) {
	ev, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneEvent: %v", err)
		return model.InboundEvent{}, err
	}
	if ev.ID == "" {
		return model.InboundEvent{}, event.ErrEventNotFound
	}
	return ev, nil
}

// GetStats returns scan-based aggregates. Eventually consistent with
// concurrent inserts.
func (uc *implUseCase) GetStats(ctx context.Context) (model.EventStats, error) {
	stats, err := uc.repo.GetStats(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetStats: %v", err)
		return model.EventStats{}, err
	}
	return stats, nil
}
