package http

import (
	"errors"
	"net/http"
	"strings"

	"calendar-schedule/internal/event"
	pkgErrors "calendar-schedule/pkg/errors"
)

var (
	errInvalidMonth    = pkgErrors.NewHTTPError(http.StatusBadRequest, "month must be YYYY-MM")
	errInvalidSelected = pkgErrors.NewHTTPError(http.StatusBadRequest, "selected must be YYYY-MM-DD")
	errMissingID       = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrValidation):
		msg := strings.TrimPrefix(err.Error(), event.ErrValidation.Error()+": ")
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msg)
	case errors.Is(err, event.ErrTransport):
		return pkgErrors.ErrBadGateway
	case errors.Is(err, event.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, event.ErrNotFound.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// bindError wraps request binding failures as 400s.
func bindError(err error) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
}
