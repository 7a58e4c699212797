package storage

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrAirportNotFound = errors.New("airport not found")
)

// StorageError provides structured error information for graph store operations.
type StorageError struct {
	Op     string // Operation that failed (e.g., "lookup")
	Entity string // Entity type (e.g., "airport")
	Key    string // Lookup key (IATA code)
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.Key, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *StorageError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building StorageErrors.
type ErrorBuilder struct {
	err StorageError
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: StorageError{Op: op}}
}

// Code sets the entity to "airport" looked up by IATA code.
func (b *ErrorBuilder) Code(code string) *ErrorBuilder {
	b.err.Entity = "airport"
	b.err.Key = code
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// CodeNotFoundError creates an airport not found error for an IATA code.
func CodeNotFoundError(code string) error {
	return NewError("lookup").Code(code).Cause(ErrAirportNotFound).Err()
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAirportNotFound)
}
