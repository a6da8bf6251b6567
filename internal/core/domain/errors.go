package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for backend calls. The backend client classifies every
// failed request into exactly one of these; callers branch with errors.Is
// and surface the wrapped backend message where one exists.
var (
	// ErrValidation marks input rejected before any network call.
	ErrValidation = errors.New("validation failed")
	// ErrAuthRejected marks a backend 4xx carrying a message — bad
	// credentials, duplicate registration, forbidden resource.
	ErrAuthRejected = errors.New("authentication rejected")
	// ErrNotFound marks a backend 404 for a named record.
	ErrNotFound = errors.New("record not found")
	// ErrNetworkUnreachable marks a request that never got a response,
	// including timeouts.
	ErrNetworkUnreachable = errors.New("network unreachable")
	// ErrServerError marks a backend 5xx or a malformed response body.
	ErrServerError = errors.New("server error")
)

// APIError carries the HTTP status and the backend-provided message for a
// failed backend call. Unwrap yields the taxonomy sentinel so callers can
// branch with errors.Is.
type APIError struct {
	Status  int
	Message string
	Kind    error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("backend: %v (status %d)", e.Kind, e.Status)
}

func (e *APIError) Unwrap() error { return e.Kind }

// StatusOf returns the HTTP status behind err, or 0 when err did not come
// from a backend response.
func StatusOf(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

// MessageOf returns the backend-provided message behind err, or "".
func MessageOf(err error) string {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return ""
}
