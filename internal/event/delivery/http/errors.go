package http

import (
	"errors"

	"webhook-ops/internal/event"
	pkgErrors "webhook-ops/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return pkgErrors.NewHTTPError(404, "event not found")
	case errors.Is(err, event.ErrNoReplayTarget):
		return pkgErrors.NewHTTPError(400, "no replay target: pass target_url or replay an event that has one")
	case errors.Is(err, event.ErrReplayDispatchFailed):
		return pkgErrors.NewHTTPError(502, "replay dispatch failed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
