package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("resource not found")
	ErrStorage         = errors.New("internal server error")
	ErrUnauthorized    = errors.New("unauthorized")
)

// AppError carries a client-facing message on top of one of the sentinel kinds above.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.Error()
}

// Is lets errors.Is match both the kind and the wrapped cause.
func (e *AppError) Is(target error) bool {
	return e.Kind == target
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind error, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func InvalidArgument(format string, args ...any) *AppError {
	return New(ErrInvalidArgument, fmt.Sprintf(format, args...), nil)
}

func Conflict(message string) *AppError {
	return New(ErrConflict, message, nil)
}

func NotFound(message string) *AppError {
	return New(ErrNotFound, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(ErrUnauthorized, message, nil)
}

// Storage wraps an unexpected store failure. The message shown to clients stays generic.
func Storage(err error) *AppError {
	return New(ErrStorage, "", err)
}

// PublicMessage is what may be shown to a client for err.
func PublicMessage(err error) string {
	if errors.Is(err, ErrStorage) {
		return "Database error"
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return err.Error()
}

// MapErrorToStatus maps the error kinds to HTTP status codes
func MapErrorToStatus(err error) int {
	if errors.Is(err, ErrInvalidArgument) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
