package http

import (
	"webhook-ops/internal/idempotency"
	"webhook-ops/pkg/log"
)

type handler struct {
	l     log.Logger
	store idempotency.Store
}

// New creates a new HTTP handler for the idempotency admin surface.
func New(l log.Logger, store idempotency.Store) *handler {
	return &handler{
		l:     l,
		store: store,
	}
}
