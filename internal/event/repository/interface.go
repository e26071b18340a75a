package repository

import (
	"context"

	"webhook-ops/internal/model"
)

// Repository is the composed interface for the event data store.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for InboundEvent.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.InboundEvent, error)
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (model.InboundEvent, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.InboundEvent, error)

	// MarkReplayed increments replay_count and stamps last_replay_at
	// atomically on the original event.
	MarkReplayed(ctx context.Context, id string) error

	// GetStats aggregates over the events table at call time.
	GetStats(ctx context.Context) (model.EventStats, error)
}
