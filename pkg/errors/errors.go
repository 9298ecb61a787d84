package errors

import (
	"errors"
	"fmt"
)

// Common application errors with proper types for error handling

var (
	// ErrInvalidInput indicates invalid input data
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates settings that cannot work together
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotImplemented indicates a feature that only acknowledges the request
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnavailable indicates an upstream dependency failed
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")
)

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// ConfigError creates a configuration error with context
func ConfigError(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// UnavailableError wraps an upstream failure
func UnavailableError(service string, err error) error {
	return fmt.Errorf("%s: %w: %w", service, ErrUnavailable, err)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
