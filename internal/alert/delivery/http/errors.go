package http

import (
	"errors"

	"webhook-ops/internal/alert"
	"webhook-ops/internal/alert/repository"
	pkgErrors "webhook-ops/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, alert.ErrAlertNotFound):
		return pkgErrors.NewHTTPError(404, "alert not found")
	case errors.Is(err, alert.ErrInvalidSeverity),
		errors.Is(err, alert.ErrInvalidCategory),
		errors.Is(err, alert.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, repository.ErrCorruptRecord):
		return pkgErrors.NewHTTPError(500, "alert record is corrupt")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
