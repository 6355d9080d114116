package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// StoreErrorMessage describes failures of the backing database.
	StoreErrorMessage = "data store unavailable"
)

// ErrNotFound marks a record that the store reported as absent.
var ErrNotFound = errors.New("not found")

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// NotFound reports that the named resource does not exist.
func NotFound(what string) *AppError {
	return New(ErrNotFound, http.StatusNotFound, what+" not found")
}

func BadRequest(message string) *AppError {
	return New(nil, http.StatusBadRequest, message)
}

// WrapStore wraps a data store error with a consistent status code and message.
func WrapStore(err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Err:     err,
		Status:  http.StatusBadGateway,
		Message: StoreErrorMessage,
	}
}

// StatusOf returns the HTTP status carried by err, or 500.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the safe message carried by err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return SystemErrorMessage
}
