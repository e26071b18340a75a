package event

// --- UseCase Inputs ---

// RecordEventInput holds the fields of a new InboundEvent entry.
type RecordEventInput struct {
	ID             string // event-provided; generated when empty
	Source         string
	Verified       bool
	SignatureValid *bool
	Payload        []byte
	Error          string
	ReplayOf       string
	TargetURL      string
}

// ListEventsInput filters the recent-events listing.
type ListEventsInput struct {
	Source   string
	Verified *bool
	Limit    int
}

// ReplayInput identifies the event to replay and an optional override
// target.
type ReplayInput struct {
	EventID   string
	TargetURL string
}

// --- UseCase Outputs ---

// ReplayOutput reports the outcome of a replay dispatch.
type ReplayOutput struct {
	NewEventID       string `json:"new_event_id"`
	DispatchedTo     string `json:"dispatched_to"`
	DeliveryAttempts int    `json:"delivery_attempts"`
}
