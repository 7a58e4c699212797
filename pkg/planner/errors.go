package planner

import "errors"

var (
	// ErrUnknownAirport is returned when a code does not resolve to a loaded
	// airport.
	ErrUnknownAirport = errors.New("unknown airport code")

	// ErrInvalidRequest wraps request validation failures.
	ErrInvalidRequest = errors.New("invalid request")
)
