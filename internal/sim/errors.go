package sim

import "errors"

// Domain errors for simulation operations.
var (
	// ErrClosed indicates an operation on a simulation after teardown.
	ErrClosed = errors.New("sim: simulation closed")

	// ErrNoBodies indicates a simulation created with an empty body set.
	ErrNoBodies = errors.New("sim: no bodies")

	// ErrBadDiameter indicates a body with a non-positive diameter.
	ErrBadDiameter = errors.New("sim: body diameter must be positive")
)
