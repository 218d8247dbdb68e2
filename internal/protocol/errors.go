package protocol

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a decode error
type ErrorType int

const (
	// ErrTypeSyntax indicates the frame is not valid JSON
	ErrTypeSyntax ErrorType = iota
	// ErrTypeUnknownEvent indicates an unsupported event type
	ErrTypeUnknownEvent
	// ErrTypeMissingField indicates a field required by the event type is absent
	ErrTypeMissingField
	// ErrTypeInvalidValue indicates a field holds an unusable value
	ErrTypeInvalidValue
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeSyntax:
		return "Syntax Error"
	case ErrTypeUnknownEvent:
		return "Unknown Event"
	case ErrTypeMissingField:
		return "Missing Field"
	case ErrTypeInvalidValue:
		return "Invalid Value"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// DecodeError describes a client frame that could not be decoded.
type DecodeError struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(typ ErrorType, message string, err error) *DecodeError {
	return &DecodeError{Type: typ, Message: message, Err: err}
}

// IsDecodeError checks if err is, or wraps, a DecodeError
func IsDecodeError(err error) bool {
	var decErr *DecodeError
	return errors.As(err, &decErr)
}
