package http

import (
	"errors"

	"webhook-ops/internal/remediation"
	pkgErrors "webhook-ops/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, remediation.ErrAlertNotFound):
		return pkgErrors.NewHTTPError(404, "alert not found")
	case errors.Is(err, remediation.ErrCorruptAlert):
		return pkgErrors.NewHTTPError(500, "alert record is corrupt")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
