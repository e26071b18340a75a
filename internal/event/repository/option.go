package repository

// CreateEventOptions holds parameters for inserting an InboundEvent.
type CreateEventOptions struct {
	ID             string
	Source         string
	Verified       bool
	SignatureValid *bool
	Payload        []byte
	Error          string
	ReplayOf       string
	TargetURL      string
}

// GetOneEventOptions holds filter parameters for fetching one event.
type GetOneEventOptions struct {
	ID string
}

// ListEventsOptions holds filter and pagination parameters.
type ListEventsOptions struct {
	Source   string
	Verified *bool
	Limit    int
}
