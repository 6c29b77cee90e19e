// Package apperror defines the error taxonomy shared by services and handlers.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType int

const (
	InternalError ErrorType = iota
	NotFoundError
	// AuthError is a credential mismatch on login.
	AuthError
	// UnauthorizedError is a missing or invalid session.
	UnauthorizedError
	ValidationError
	ConflictError
	RateLimitedError
)

// AppError carries a user-facing message and an optional underlying error.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error type to an HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case NotFoundError:
		return http.StatusNotFound
	case AuthError, ValidationError:
		return http.StatusBadRequest
	case UnauthorizedError:
		return http.StatusUnauthorized
	case ConflictError:
		return http.StatusConflict
	case RateLimitedError:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func New(errType ErrorType, message string, err error) *AppError {
	return &AppError{Type: errType, Message: message, Err: err}
}

func NewNotFound(message string) *AppError {
	return New(NotFoundError, message, nil)
}

func NewAuth(message string) *AppError {
	return New(AuthError, message, nil)
}

func NewUnauthorized(message string) *AppError {
	return New(UnauthorizedError, message, nil)
}

func NewValidation(message string, err error) *AppError {
	return New(ValidationError, message, err)
}

func NewConflict(message string, err error) *AppError {
	return New(ConflictError, message, err)
}

func NewInternal(message string, err error) *AppError {
	return New(InternalError, message, err)
}

// As extracts an *AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func is(err error, t ErrorType) bool {
	appErr, ok := As(err)
	return ok && appErr.Type == t
}

func IsNotFound(err error) bool     { return is(err, NotFoundError) }
func IsAuth(err error) bool         { return is(err, AuthError) }
func IsUnauthorized(err error) bool { return is(err, UnauthorizedError) }
func IsValidation(err error) bool   { return is(err, ValidationError) }
func IsConflict(err error) bool     { return is(err, ConflictError) }
