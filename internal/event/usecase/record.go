package usecase

import (
	"context"

	"github.com/google/uuid"

	"webhook-ops/internal/event"
	repo "webhook-ops/internal/event/repository"
	"webhook-ops/internal/model"
)

// Record appends a new InboundEvent entry.
func (uc *implUseCase) Record(ctx context.Context, input event.RecordEventInput) (model.InboundEvent, error) {
	if len(input.Payload) == 0 {
		return model.InboundEvent{}, event.ErrEmptyPayload
	}

	id := input.ID
	if id == "" {
		id = uuid.New().String()
	}

	ev, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		ID:             id,
		Source:         input.Source,
		Verified:       input.Verified,
		SignatureValid: input.SignatureValid,
		Payload:        input.Payload,
		Error:          input.Error,
		ReplayOf:       input.ReplayOf,
		TargetURL:      input.TargetURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Record CreateEvent: %v", err)
		return model.InboundEvent{}, err
	}

	return ev, nil
}
