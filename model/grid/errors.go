package grid

import "errors"

var (
	// ErrEmptyGrid is returned when a grid is constructed with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: empty grid")

	// ErrOutOfBounds is returned when a cell or site falls outside the grid.
	ErrOutOfBounds = errors.New("grid: out of bounds")
)
