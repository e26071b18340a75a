package idempotency

import "errors"

var (
	// ErrStoreUnavailable signals an infrastructure failure. Callers
	// answer with a retryable 5xx so the webhook provider redelivers.
	ErrStoreUnavailable = errors.New("idempotency store unavailable")

	ErrEmptyEventID = errors.New("event id is required")
)
