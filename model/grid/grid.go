package grid

import "fmt"

// Site is the stable integer address of a grid cell.
type Site int

// Cell is a (row, column) coordinate on the grid. Row 0 is the bottom row;
// shuttling "up" increases the row index.
type Cell struct {
	Row int
	Col int
}

// Shift returns the cell displaced by the given row/column deltas.
func (c Cell) Shift(dRow, dCol int) Cell {
	return Cell{Row: c.Row + dRow, Col: c.Col + dCol}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid describes an m x n crossbar lattice.
type Grid struct {
	Rows int
	Cols int
}

// New returns a Grid of the supplied dimensions.
// Returns ErrEmptyGrid when either dimension is not positive.
func New(rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	return Grid{Rows: rows, Cols: cols}, nil
}

// Contains reports whether the cell lies on the grid.
func (g Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Sites returns the number of addressable sites.
func (g Grid) Sites() int {
	return g.Rows * g.Cols
}

// SiteOf returns the site address of a cell. The mapping is row-major so
// that sites on the same row are consecutive.
func (g Grid) SiteOf(c Cell) Site {
	return Site(c.Row*g.Cols + c.Col)
}

// CellOf returns the cell addressed by a site.
func (g Grid) CellOf(s Site) (Cell, error) {
	if s < 0 || int(s) >= g.Sites() {
		return Cell{}, fmt.Errorf("%w: site %d", ErrOutOfBounds, s)
	}
	return Cell{Row: int(s) / g.Cols, Col: int(s) % g.Cols}, nil
}

// Lines returns the number of shared control lines. Lines run along the
// (column - row) diagonals, so a grid has Rows+Cols-1 of them; for the
// square crossbars this equals 2*min(m,n)-1.
func (g Grid) Lines() int {
	return g.Rows + g.Cols - 1
}

// LineOf returns the control-line index of a cell, normalised so that
// indices start at 0 for the top-left diagonal.
func (g Grid) LineOf(c Cell) int {
	return c.Col - c.Row + g.Rows - 1
}

// HorizontalBarriers returns the number of whole-row boundary gates
// separating adjacent rows.
func (g Grid) HorizontalBarriers() int {
	return g.Rows - 1
}

// VerticalBarriers returns the number of whole-column boundary gates
// separating adjacent columns.
func (g Grid) VerticalBarriers() int {
	return g.Cols - 1
}
