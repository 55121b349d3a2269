package http

import (
	"errors"
	"net/http"

	domainerrors "swishview/domain/errors"
)

// statusFor maps domain errors onto HTTP statuses. Anything unrecognized is
// a 500.
func statusFor(err error) int {
	switch {
	case domainerrors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrGateway):
		return http.StatusBadGateway
	case errors.Is(err, domainerrors.ErrUnexpectedCampaignState):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrActivationFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
