package event

import (
	"context"

	"webhook-ops/internal/model"
)

// UseCase is the event bus recorder/replayer.
type UseCase interface {
	// Record appends an immutable InboundEvent entry.
	Record(ctx context.Context, input RecordEventInput) (model.InboundEvent, error)

	// GetRecent lists recorded events newest-first, limit capped at 500.
	GetRecent(ctx context.Context, input ListEventsInput) ([]model.InboundEvent, error)

	// Detail returns a single recorded event by ID.
	Detail(ctx context.Context, id string) (model.InboundEvent, error)

	// Replay re-dispatches a stored payload byte-for-byte to the target
	// URL (or the original target), re-signed with the current secret,
	// records a new entry for the replay and bumps the original's
	// replay count.
	Replay(ctx context.Context, input ReplayInput) (ReplayOutput, error)

	// GetStats returns scan-based aggregates over recorded events.
	GetStats(ctx context.Context) (model.EventStats, error)
}

// Dispatcher delivers a replayed payload to a target URL.
type Dispatcher interface {
	Dispatch(ctx context.Context, targetURL string, payload []byte) (attempts int, err error)
}
