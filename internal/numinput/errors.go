package numinput

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a configuration error
type ErrorType int

const (
	// ErrTypeFormat indicates the locale, currency or precision was rejected
	ErrTypeFormat ErrorType = iota
	// ErrTypeRange indicates an empty value range (min > max after clamping)
	ErrTypeRange
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeFormat:
		return "Format Error"
	case ErrTypeRange:
		return "Range Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ConfigError is returned by New and SetOptions for options that cannot be
// applied. Runtime field events never fail.
type ConfigError struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewFormatError creates a format configuration error
func NewFormatError(message string, err error) *ConfigError {
	return &ConfigError{Type: ErrTypeFormat, Message: message, Err: err}
}

// NewRangeError creates a value range error
func NewRangeError(message string) *ConfigError {
	return &ConfigError{Type: ErrTypeRange, Message: message}
}

// IsConfigError checks if err is, or wraps, a ConfigError
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// IsRangeError checks if err is, or wraps, a value range error
func IsRangeError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr) && cfgErr.Type == ErrTypeRange
}
