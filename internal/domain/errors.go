package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnknownTool is returned when the model requests a tool that is
// not registered. Non-fatal: the caller logs and skips the call.
var ErrUnknownTool = errors.New("unknown tool")

// ErrToolBlocked is returned when the tool policy denies an invocation.
var ErrToolBlocked = errors.New("tool invocation blocked by policy")

// ValidationError reports malformed client input with field-level
// detail. Handled at the transport boundary, never fatal.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ProviderError wraps a failure talking to the model provider or
// decoding its tool calls. Surfaced to clients as a generic internal
// error; the underlying detail is only logged server-side.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// StorageError marks the underlying storage medium as unavailable.
// Fatal to the current request, not retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
