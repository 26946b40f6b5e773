package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies an application error. The calling layer maps these to
// its own response kinds; the core only guarantees the distinction survives.
type ErrorType string

const (
	// ErrorTypeNotFound indicates an id-based lookup that found nothing.
	ErrorTypeNotFound ErrorType = "NOT_FOUND"
	// ErrorTypeInternal indicates an unexpected infrastructure failure.
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError is an application error carrying its classification and an
// optional wrapped cause.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an application error of the given type.
func New(errorType ErrorType, message string) error {
	return &AppError{Type: errorType, Message: message}
}

// Wrap wraps a cause with an application error of the given type.
func Wrap(errorType ErrorType, message string, err error) error {
	return &AppError{Type: errorType, Message: message, Err: err}
}

// NotFoundf creates a not-found error with a formatted message.
func NotFoundf(format string, args ...any) error {
	return New(ErrorTypeNotFound, fmt.Sprintf(format, args...))
}

// Internal creates an internal error wrapping its cause.
func Internal(message string, err error) error {
	return Wrap(ErrorTypeInternal, message, err)
}

// IsNotFound reports whether err is classified as not-found.
func IsNotFound(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsInternal reports whether err is classified as internal.
func IsInternal(err error) bool {
	return isType(err, ErrorTypeInternal)
}

func isType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}
