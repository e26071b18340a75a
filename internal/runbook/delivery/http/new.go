package http

import (
	"webhook-ops/internal/runbook"
	"webhook-ops/pkg/log"
)

type handler struct {
	l  log.Logger
	uc runbook.UseCase
}

// New creates a new HTTP handler for the runbook domain.
func New(l log.Logger, uc runbook.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
