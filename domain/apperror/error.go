// Package apperror holds the single error kind returned to HTTP clients.
package apperror

import (
	"errors"
	"net/http"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries the status code and message rendered in the response
// envelope. Cause is logged but never sent to the client.
type Error struct {
	StatusCode int
	Message    string
	Errors     []FieldError
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func New(status int, message string) *Error {
	return &Error{StatusCode: status, Message: message}
}

func BadRequest(message string) *Error   { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *Error    { return New(http.StatusForbidden, message) }
func NotFound(message string) *Error     { return New(http.StatusNotFound, message) }
func Conflict(message string) *Error     { return New(http.StatusConflict, message) }

func TooManyRequests(message string) *Error {
	return New(http.StatusTooManyRequests, message)
}

// Internal hides cause behind a generic message.
func Internal(cause error) *Error {
	return &Error{
		StatusCode: http.StatusInternalServerError,
		Message:    "Something went wrong",
		Cause:      cause,
	}
}

func Validation(fields []FieldError) *Error {
	return &Error{
		StatusCode: http.StatusBadRequest,
		Message:    "Validation failed",
		Errors:     fields,
	}
}

// From converts any error into an *Error, treating unknown errors as internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// StatusOf returns the HTTP status err maps to.
func StatusOf(err error) int {
	return From(err).StatusCode
}
