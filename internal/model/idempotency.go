package model

import "time"

// IdempotencyRecord maps an event ID to its processing state.
// A given EventID must not be processed twice while now < ExpiresAt.
type IdempotencyRecord struct {
	EventID   string    `json:"event_id"`
	SeenAt    time.Time `json:"seen_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
