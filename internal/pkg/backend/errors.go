package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable is a transport failure: the backend could not be reached
	// or did not answer in time.
	ErrUnavailable = errors.New("hr backend unavailable")

	// ErrNoToken means the context carries no credential to forward.
	ErrNoToken = errors.New("no backend credential in context")
)

// APIError is a non-success answer from the backend.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("hr backend %s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("hr backend %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with one of the given codes.
func IsStatus(err error, codes ...int) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, c := range codes {
		if apiErr.StatusCode == c {
			return true
		}
	}
	return false
}

// IsNotFound reports whether the backend answered 404.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsRejected reports whether the backend refused the request as invalid for
// the current state of the resource.
func IsRejected(err error) bool {
	return IsStatus(err, http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity)
}
