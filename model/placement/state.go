package placement

import (
	"fmt"

	"github.com/viant/crossbar/model/circuit"
	"github.com/viant/crossbar/model/grid"
)

// State is a snapshot of qubit positions on the grid. Both mappings are
// kept so lookups are O(1) in either direction; the pair is mutated only
// through AddQubit and Shuttle, which keep them consistent. Every qubit
// occupies exactly one cell and every occupied cell holds exactly one
// qubit.
type State struct {
	grid    grid.Grid
	cells   map[int]grid.Cell
	qubits  map[grid.Cell]int
	ancilla map[int]bool
}

// NewState returns an empty placement over the supplied grid.
func NewState(g grid.Grid) *State {
	return &State{
		grid:    g,
		cells:   map[int]grid.Cell{},
		qubits:  map[grid.Cell]int{},
		ancilla: map[int]bool{},
	}
}

// Grid returns the lattice this placement lives on.
func (s *State) Grid() grid.Grid {
	return s.grid
}

// AddQubit places qubit id on the cell. Returns ErrOccupied when the cell
// already holds a qubit, ErrInvalidMove when the cell is off-grid or the
// id is already placed.
func (s *State) AddQubit(cell grid.Cell, id int, ancilla bool) error {
	if !s.grid.Contains(cell) {
		return fmt.Errorf("%w: q[%d] at %v", ErrInvalidMove, id, cell)
	}
	if occupant, taken := s.qubits[cell]; taken {
		return fmt.Errorf("%w: %v holds q[%d]", ErrOccupied, cell, occupant)
	}
	if _, placed := s.cells[id]; placed {
		return fmt.Errorf("%w: q[%d] already placed", ErrInvalidMove, id)
	}
	s.cells[id] = cell
	s.qubits[cell] = id
	if ancilla {
		s.ancilla[id] = true
	}
	return nil
}

// CellOf returns the cell holding the qubit.
func (s *State) CellOf(id int) (grid.Cell, bool) {
	cell, ok := s.cells[id]
	return cell, ok
}

// SiteOf returns the site address of the qubit's cell.
func (s *State) SiteOf(id int) (grid.Site, bool) {
	cell, ok := s.cells[id]
	if !ok {
		return 0, false
	}
	return s.grid.SiteOf(cell), true
}

// QubitAt returns the qubit occupying the cell.
func (s *State) QubitAt(cell grid.Cell) (int, bool) {
	id, ok := s.qubits[cell]
	return id, ok
}

// Occupied reports whether the cell holds a qubit.
func (s *State) Occupied(cell grid.Cell) bool {
	_, ok := s.qubits[cell]
	return ok
}

// OccupancyCount returns 1 when the cell holds a qubit, 0 otherwise.
func (s *State) OccupancyCount(cell grid.Cell) int {
	if s.Occupied(cell) {
		return 1
	}
	return 0
}

// IsAncilla reports whether the qubit is an ancilla.
func (s *State) IsAncilla(id int) bool {
	return s.ancilla[id]
}

// Qubits returns the number of placed qubits.
func (s *State) Qubits() int {
	return len(s.cells)
}

// Shuttle moves the qubit one cell in the given direction, updating both
// mappings atomically. The destination must be on the grid and empty;
// violating that returns ErrInvalidMove.
func (s *State) Shuttle(id int, move circuit.Move) error {
	origin, ok := s.cells[id]
	if !ok {
		return fmt.Errorf("%w: unknown q[%d]", ErrInvalidMove, id)
	}
	dRow, dCol := move.Delta()
	dest := origin.Shift(dRow, dCol)
	if !s.grid.Contains(dest) {
		return fmt.Errorf("%w: q[%d] %s from %v leaves the grid", ErrInvalidMove, id, move, origin)
	}
	if occupant, taken := s.qubits[dest]; taken {
		return fmt.Errorf("%w: q[%d] %s into %v held by q[%d]", ErrInvalidMove, id, move, dest, occupant)
	}
	delete(s.qubits, origin)
	s.qubits[dest] = id
	s.cells[id] = dest
	return nil
}

// ShuttleUp moves the qubit one row up.
func (s *State) ShuttleUp(id int) error { return s.Shuttle(id, circuit.MoveUp) }

// ShuttleDown moves the qubit one row down.
func (s *State) ShuttleDown(id int) error { return s.Shuttle(id, circuit.MoveDown) }

// ShuttleLeft moves the qubit one column left.
func (s *State) ShuttleLeft(id int) error { return s.Shuttle(id, circuit.MoveLeft) }

// ShuttleRight moves the qubit one column right.
func (s *State) ShuttleRight(id int) error { return s.Shuttle(id, circuit.MoveRight) }

// Clone returns an independently owned copy of the state.
func (s *State) Clone() *State {
	ret := &State{
		grid:    s.grid,
		cells:   make(map[int]grid.Cell, len(s.cells)),
		qubits:  make(map[grid.Cell]int, len(s.qubits)),
		ancilla: make(map[int]bool, len(s.ancilla)),
	}
	for id, cell := range s.cells {
		ret.cells[id] = cell
	}
	for cell, id := range s.qubits {
		ret.qubits[cell] = id
	}
	for id, flag := range s.ancilla {
		ret.ancilla[id] = flag
	}
	return ret
}

// Equals performs a full structural comparison of both mappings and the
// ancilla flags.
func (s *State) Equals(other *State) bool {
	if other == nil || s.grid != other.grid || len(s.cells) != len(other.cells) {
		return false
	}
	for id, cell := range s.cells {
		if otherCell, ok := other.cells[id]; !ok || otherCell != cell {
			return false
		}
	}
	for id := range s.cells {
		if s.ancilla[id] != other.ancilla[id] {
			return false
		}
	}
	return true
}
