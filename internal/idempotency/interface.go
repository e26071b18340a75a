package idempotency

import (
	"context"

	"webhook-ops/internal/model"
)

// Store tracks which inbound event IDs have already been processed.
//
// CheckAndRecord must be atomic per event ID: under concurrent
// deliveries of the same ID exactly one caller observes
// isDuplicate=false. Implementations must use a native conditional
// insert (insert-if-absent), never read-then-write.
//
// On store failure callers must fail closed: reject the delivery with
// a retryable error rather than risk processing it twice.
type Store interface {
	CheckAndRecord(ctx context.Context, eventID string) (isDuplicate bool, err error)
	CleanupExpired(ctx context.Context) (int, error)
	List(ctx context.Context, limit int) ([]model.IdempotencyRecord, error)
}
