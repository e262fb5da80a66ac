package utils

import (
	"errors"
	"net/http"
)

// ErrorKind classifies every failure a handler can report to a client.
type ErrorKind string

const (
	KindInvalidInput    ErrorKind = "invalid_input"
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindForbidden       ErrorKind = "forbidden"
	KindNotFound        ErrorKind = "not_found"
	KindUpstream        ErrorKind = "upstream_failure"
	KindInternal        ErrorKind = "internal"
)

// AppError is the single error result threaded from guards and services
// up to the HTTP layer.
type AppError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ErrInvalidInput(message string, fields map[string]string) *AppError {
	return &AppError{Kind: KindInvalidInput, Status: http.StatusBadRequest, Message: message, Fields: fields}
}

func ErrUnauthenticated(message string, err error) *AppError {
	return &AppError{Kind: KindUnauthenticated, Status: http.StatusUnauthorized, Message: message, Err: err}
}

func ErrForbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Status: http.StatusForbidden, Message: message}
}

func ErrNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

// ErrStore reports a failed document store call.
func ErrStore(message string, err error) *AppError {
	return &AppError{Kind: KindUpstream, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// ErrProvider reports a failed call to a third-party provider.
func ErrProvider(message string, err error) *AppError {
	return &AppError{Kind: KindUpstream, Status: http.StatusBadGateway, Message: message, Err: err}
}

// ErrInternal reports a local failure that involved no outside call.
func ErrInternal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Status: http.StatusInternalServerError, Message: message, Err: err}
}

// AsAppError unwraps err into an AppError, treating anything unknown as a
// store failure so that no error reaches the client unclassified.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrStore("Internal server error", err)
}
