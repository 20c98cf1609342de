package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error.
type ErrorType string

const (
	// InvalidInputError indicates an invalid input error.
	InvalidInputError ErrorType = "InvalidInput"
	// InternalError indicates an internal error.
	InternalError ErrorType = "Internal"
)

var (
	// ErrNegativeOrder error for when a truncation order below zero is requested.
	// The series has no terms of negative degree, so there is nothing to sum.
	ErrNegativeOrder = New(InvalidInputError, "truncation order must be >= 0")

	// ErrNotANumber error for when an evaluation point does not parse as a float.
	ErrNotANumber = New(InvalidInputError, "evaluation point is not a number")

	// ErrInvalidOrder error for when a truncation order does not parse as an integer.
	ErrInvalidOrder = New(InvalidInputError, "truncation order is not an integer")

	// ErrNoPoints error for when an order is given without any evaluation points.
	ErrNoPoints = New(InvalidInputError, "at least one evaluation point is required")

	ErrIterationsMustBePositive = New(InvalidInputError, "iterations must be positive")
)

// TypedError represents an error with a specific type.
type TypedError struct {
	Type ErrorType
	Err  error
}

// Is returns true if the err is a *TypedError and its Type is the one specified
func Is(err error, typ ErrorType) bool {
	e, ok := err.(*TypedError)
	if ok {
		return e.Type == typ
	}
	return false
}

// Error implements the error interface for TypedError.
func (e *TypedError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *TypedError) Unwrap() error {
	return e.Err
}

// New creates a new TypedError with the given error type and message.
func New(errorType ErrorType, message string) *TypedError {
	return &TypedError{Type: errorType, Err: errors.New(message)}
}

// Newf creates a new TypedError with the given error type and message.
// The format verbs include %w, so sentinels can be wrapped with call-site context.
func Newf(errorType ErrorType, message string, a ...any) *TypedError {
	return &TypedError{Type: errorType, Err: fmt.Errorf(message, a...)}
}

// Wrap creates a new TypedError by wrapping an existing error with an additional message.
func Wrap(errorType ErrorType, err error, message string) *TypedError {
	return &TypedError{Type: errorType, Err: fmt.Errorf("%s: %w", message, err)}
}
