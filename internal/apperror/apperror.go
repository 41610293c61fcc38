// Package apperror defines the error taxonomy shared by services and
// handlers. Services return *Error values; the handler layer maps them to
// the response envelope in a single place. Anything that is not an *Error
// is treated as an internal failure and masked from the client.
package apperror

import (
	"errors"
	"net/http"
)

// Error carries the HTTP status a failure maps to along with a
// client-visible message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// New builds an Error with an explicit status.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error   { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message) }
func NotFound(message string) *Error     { return New(http.StatusNotFound, message) }

// As extracts an *Error from err, if present.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
