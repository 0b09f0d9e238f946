package placement

import "errors"

var (
	// ErrInvalidMove reports a shuttle into an occupied or out-of-bounds
	// cell, or of an unknown qubit. Reaching it through the manager's
	// available/reserve contract is a programming error: callers must
	// confirm availability before moving.
	ErrInvalidMove = errors.New("placement: invalid move")

	// ErrOccupied reports a qubit added to a cell that already holds one.
	ErrOccupied = errors.New("placement: cell occupied")

	// ErrNoPlacementState reports a timeline query that exhausted its scan
	// range without finding a state.
	ErrNoPlacementState = errors.New("placement: no state at cycle")
)
