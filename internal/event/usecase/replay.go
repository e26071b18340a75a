package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"webhook-ops/internal/event"
	repo "webhook-ops/internal/event/repository"
)

// Replay re-dispatches a stored event's payload byte-for-byte. A new
// entry is recorded for the replay itself; the original only gets its
// replay bookkeeping bumped on successful dispatch.
func (uc *implUseCase) Replay(ctx context.Context, input event.ReplayInput) (event.ReplayOutput, error) {
	original, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: input.EventID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Replay GetOneEvent: %v", err)
		return event.ReplayOutput{}, err
	}
	if original.ID == "" {
		return event.ReplayOutput{}, event.ErrEventNotFound
	}

	target := input.TargetURL
	if target == "" {
		target = original.TargetURL
	}
	if target == "" {
		return event.ReplayOutput{}, event.ErrNoReplayTarget
	}

	attempts, dispatchErr := uc.dispatcher.Dispatch(ctx, target, original.Payload)

	// The replay gets its own immutable entry either way; failures are
	// visible in the event log, not silently dropped.
	dispatchErrMsg := ""
	if dispatchErr != nil {
		dispatchErrMsg = dispatchErr.Error()
	}
	replayEntry, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		ID:             uuid.New().String(),
		Source:         original.Source,
		Verified:       original.Verified,
		SignatureValid: original.SignatureValid,
		Payload:        original.Payload,
		Error:          dispatchErrMsg,
		ReplayOf:       original.ID,
		TargetURL:      target,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Replay CreateEvent: %v", err)
		return event.ReplayOutput{}, err
	}

	if dispatchErr != nil {
		uc.l.Warnf(ctx, "uc.Replay dispatch to %s failed after %d attempts: %v", target, attempts, dispatchErr)
		return event.ReplayOutput{
			NewEventID:       replayEntry.ID,
			DispatchedTo:     target,
			DeliveryAttempts: attempts,
		}, fmt.Errorf("%w: %v", event.ErrReplayDispatchFailed, dispatchErr)
	}

	if err := uc.repo.MarkReplayed(ctx, original.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Replay MarkReplayed: %v", err)
		return event.ReplayOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Replay: event %s re-dispatched to %s as %s", original.ID, target, replayEntry.ID)
	return event.ReplayOutput{
		NewEventID:       replayEntry.ID,
		DispatchedTo:     target,
		DeliveryAttempts: attempts,
	}, nil
}
