package httpx

import (
	"errors"
	"net/http"

	"github.com/staffdesk/staffdesk/internal/shared"
)

const internalMessage = "Internal Server Error"

// RespondError maps a classified error to a status code and a client-safe
// message. Unclassified errors collapse to a generic 500; the underlying
// error is never serialized into the body.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation):
		Message(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrUnauthenticated):
		Message(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, shared.ErrInvalidCredentials):
		Message(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, shared.ErrForbidden):
		Message(w, http.StatusForbidden, err.Error())
	case errors.Is(err, shared.ErrNotFound):
		Message(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shared.ErrCreationFailed):
		Message(w, http.StatusInternalServerError, err.Error())
	default:
		Message(w, http.StatusInternalServerError, internalMessage)
	}
}
