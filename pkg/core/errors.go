// Package core provides the main MemAgent client and memory management functionality.
package core

import (
	"errors"
	"fmt"
)

// Predefined errors for common failure scenarios.
var (
	// ErrNotFound indicates that a requested memory was not found.
	ErrNotFound = errors.New("memory not found")

	// ErrInvalidInput indicates that a required argument is missing or empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCategory indicates that a caller supplied a category outside
	// the fixed set of classifier categories.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownOperation indicates that a caller invoked an operation name
	// the system does not recognize. This is a programming error at the
	// adapter boundary and is surfaced loudly rather than swallowed.
	ErrUnknownOperation = errors.New("unknown operation")
)

// MemoryError wraps errors with operation context.
//
// It provides additional context about which operation failed,
// making error messages more informative for debugging.
//
// Example:
//
//	err := &MemoryError{
//	    Op:  "Save",
//	    Err: ErrInvalidInput,
//	}
//	// Error() returns: "memagent: Save: invalid input"
type MemoryError struct {
	// Op is the name of the operation that failed.
	Op string

	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message.
//
// The format is: "memagent: <Op>: <Err>"
func (e *MemoryError) Error() string {
	return fmt.Sprintf("memagent: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
//
// This allows using errors.Is() and errors.As() with MemoryError.
func (e *MemoryError) Unwrap() error {
	return e.Err
}

// NewMemoryError creates a new MemoryError wrapping the given error.
//
// If err is nil, returns nil. This allows safe error wrapping:
//
//	if err != nil {
//	    return NewMemoryError("Save", err)
//	}
//
// Parameters:
//   - op: Name of the operation (e.g., "Save", "Search", "Delete")
//   - err: The underlying error to wrap
//
// Returns a MemoryError, or nil if err is nil.
func NewMemoryError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &MemoryError{
		Op:  op,
		Err: err,
	}
}
