package http

import (
	"errors"

	"webhook-ops/internal/runbook"
	pkgErrors "webhook-ops/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, runbook.ErrRunbookNotFound):
		return pkgErrors.NewHTTPError(404, "runbook not found")
	case errors.Is(err, runbook.ErrEmptyName),
		errors.Is(err, runbook.ErrEmptySource),
		errors.Is(err, runbook.ErrNoSteps):
		return pkgErrors.NewHTTPError(400, err.Error())
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
