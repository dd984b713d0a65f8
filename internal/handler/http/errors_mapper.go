package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidEmail:        http.StatusBadRequest,
	service.ErrPasswordTooShort:    http.StatusBadRequest,
	service.ErrWrongCredentials:    http.StatusBadRequest,
	service.ErrEmptyTodoText:       http.StatusBadRequest,

	service.ErrTokenCreationFailed:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyTaken: http.StatusBadRequest,
	store.ErrNoUserWasFound:    http.StatusBadRequest,
	store.ErrTodoNotFound:      http.StatusNotFound,
	store.ErrInvalidTodoText:   http.StatusBadRequest,

	ErrMalformedTodoID: http.StatusBadRequest,
}

// statusFromError resolves err to the HTTP status it maps to. Anything not
// classified above — including low-level store failures — degrades to 400
// with the error detail in the body; the service never answers 500 for a
// persistence fault.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusBadRequest
}
