package handler

import (
	"errors"
	"net/http"

	"github.com/go-api-whatsapp/internal/domain"
)

// httpError maps a service error to an HTTP response via the domain
// sentinels. Everything unrecognised becomes an opaque 500.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCodeInvalidOrExpired):
		writeError(w, http.StatusBadRequest, "Invalid or expired code")
	case errors.Is(err, domain.ErrCodeMismatch):
		writeError(w, http.StatusBadRequest, "Incorrect code")
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrProvider):
		writeJSON(w, http.StatusInternalServerError, ErrorEnvelope{
			Error:  "failed to send message",
			Detail: err.Error(),
		})
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
