package apperror

import (
	"errors"
	"fmt"
)

// ErrorType classifies failures for the HTTP layer.
type ErrorType string

const (
	ErrorTypeNotFound   ErrorType = "NOT_FOUND"
	ErrorTypeBadRequest ErrorType = "BAD_REQUEST"
	ErrorTypeInternal   ErrorType = "INTERNAL"
)

// AppError carries a client-safe message alongside the underlying cause.
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

func NotFound(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message}
}

func BadRequest(message string) *AppError {
	return &AppError{Type: ErrorTypeBadRequest, Message: message}
}

// TypeOf returns the type of the first AppError in err's chain. Anything
// else is internal.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// PublicMessage returns the message a client may see for err.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Type != ErrorTypeInternal {
		return appErr.Message
	}
	return MsgInternal
}

// MsgInternal is the only message clients see for internal failures.
const MsgInternal = "Error interno del servidor"
