package http

import (
	"webhook-ops/internal/alert"
	"webhook-ops/pkg/log"
)

type handler struct {
	l  log.Logger
	uc alert.UseCase
}

// New creates a new HTTP handler for the alert domain.
func New(l log.Logger, uc alert.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
