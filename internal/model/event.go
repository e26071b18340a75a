package model

import (
	"encoding/json"
	"time"
)

// InboundEvent represents one received webhook delivery.
// Immutable after creation except for replay bookkeeping.
type InboundEvent struct {
	ID             string          `json:"id"`
	Source         string          `json:"source"`
	ReceivedAt     time.Time       `json:"received_at"`
	Verified       bool            `json:"verified"`
	SignatureValid *bool           `json:"signature_valid"` // nil when no signature was presented
	Payload        json.RawMessage `json:"payload"`
	PayloadSize    int             `json:"payload_size"`
	Error          string          `json:"error,omitempty"`

	// Replay bookkeeping
	ReplayCount  int        `json:"replay_count"`
	LastReplayAt *time.Time `json:"last_replay_at,omitempty"`
	ReplayOf     string     `json:"replay_of,omitempty"` // original event ID when this entry is a replay copy
	TargetURL    string     `json:"target_url,omitempty"`
}

// EventStats is the derived aggregate over recorded events.
// Computed by scanning at query time; eventually consistent with
// concurrent inserts.
type EventStats struct {
	TotalEvents         int            `json:"total_events"`
	EventsBySource      map[string]int `json:"events_by_source"`
	DeliverySuccessRate float64        `json:"delivery_success_rate"` // verified / total
	Last24h             int            `json:"last_24h"`
	Last7d              int            `json:"last_7d"`
}
