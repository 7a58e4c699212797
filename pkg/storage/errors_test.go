package storage

import (
	"errors"
	"fmt"
	"testing"
)

func TestStorageError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *StorageError
		expected string
	}{
		{
			name: "with key",
			err: &StorageError{
				Op:     "lookup",
				Entity: "airport",
				Key:    "ZZZ",
				Cause:  ErrAirportNotFound,
			},
			expected: `lookup airport "ZZZ": airport not found`,
		},
		{
			name: "minimal",
			err: &StorageError{
				Op:     "lookup",
				Entity: "airport",
				Cause:  ErrAirportNotFound,
			},
			expected: "lookup airport: airport not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	err := CodeNotFoundError("XYZ")

	if !errors.Is(err, ErrAirportNotFound) {
		t.Error("errors.Is(err, ErrAirportNotFound) = false, want true")
	}

	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatal("errors.As did not find *StorageError")
	}
	if se.Key != "XYZ" {
		t.Errorf("Key = %q, want XYZ", se.Key)
	}

	wrapped := fmt.Errorf("planner: %w", err)
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound(wrapped) = false, want true")
	}
}

func TestErrorBuilder(t *testing.T) {
	err := NewError("lookup").Code("LHR").Cause(ErrAirportNotFound).Err()

	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatal("builder did not produce a *StorageError")
	}
	if se.Op != "lookup" || se.Entity != "airport" || se.Key != "LHR" {
		t.Errorf("builder produced %+v", se)
	}
	if !IsNotFound(err) {
		t.Error("built error should classify as not found")
	}
	if IsNotFound(errors.New("other")) {
		t.Error("unrelated error classified as not found")
	}
	if (&StorageError{Cause: ErrAirportNotFound}).Is(nil) {
		t.Error("Is(nil) should be false")
	}
}
