package http

import (
	"webhook-ops/internal/remediation"
	"webhook-ops/pkg/log"
)

type handler struct {
	l  log.Logger
	uc remediation.UseCase
}

// New creates a new HTTP handler for the remediation engine.
func New(l log.Logger, uc remediation.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
