package deadlock

import (
	"fmt"

	"github.com/viant/crossbar/model/circuit"
	"github.com/viant/crossbar/model/grid"
	"github.com/viant/crossbar/model/placement"
	"github.com/viant/crossbar/schedule"
)

// ErrNotShuttle is returned when the solver is asked about an instruction
// that does not encode a grid move.
var ErrNotShuttle = fmt.Errorf("deadlock: instruction is not a shuttle")

// Outcome is the terminal result of one resolution attempt.
type Outcome int

const (
	// Unsolved means the conflict remains; the caller must treat the
	// instruction as unschedulable at this cycle, not retry the solver.
	Unsolved Outcome = iota
	// Resolved means no conflicting pair remains after the repair moves.
	Resolved
)

// String returns the outcome name.
func (o Outcome) String() string {
	if o == Resolved {
		return "resolved"
	}
	return "unsolved"
}

// Pair is one conflicting adjacency: two occupied cells whose joint
// occupancy blocks the requested move.
type Pair struct {
	A grid.Cell
	B grid.Cell
}

// Solver attempts bounded repair of shuttle conflicts over one
// scheduling pass's timeline.
type Solver struct {
	direction schedule.Direction
	timeline  *placement.Timeline
}

// New returns a solver bound to the pass direction and its timeline.
func New(direction schedule.Direction, timeline *placement.Timeline) *Solver {
	return &Solver{direction: direction, timeline: timeline}
}

// Conflicts returns the conflicting cell pairs that block the shuttle at
// the candidate cycle. A vertical move scans every column for joint
// occupancy of the two rows around the crossed boundary; a horizontal
// move scans every row symmetrically. Backward scheduling swaps which
// side of the boundary counts as ahead.
func (s *Solver) Conflicts(cycle int, ins *circuit.Instruction) ([]Pair, error) {
	state, err := s.timeline.StateAt(cycle, s.direction)
	if err != nil {
		return nil, err
	}
	return s.conflicts(state, ins)
}

func (s *Solver) conflicts(state *placement.State, ins *circuit.Instruction) ([]Pair, error) {
	move, ok := circuit.MoveOf(ins.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotShuttle, ins.Name)
	}
	g := state.Grid()
	origin, err := g.CellOf(ins.Primary())
	if err != nil {
		return nil, err
	}
	effective := move
	if s.direction == schedule.Backward {
		effective = move.Opposite()
	}

	var pairs []Pair
	if move.Vertical() {
		top, bottom := origin.Row+1, origin.Row
		if effective == circuit.MoveDown {
			top, bottom = origin.Row, origin.Row-1
		}
		for col := 0; col < g.Cols; col++ {
			a := grid.Cell{Row: top, Col: col}
			b := grid.Cell{Row: bottom, Col: col}
			if g.Contains(a) && g.Contains(b) && state.Occupied(a) && state.Occupied(b) {
				pairs = append(pairs, Pair{A: a, B: b})
			}
		}
		return pairs, nil
	}
	left, right := origin.Col, origin.Col+1
	if effective == circuit.MoveLeft {
		left, right = origin.Col-1, origin.Col
	}
	for row := 0; row < g.Rows; row++ {
		a := grid.Cell{Row: row, Col: left}
		b := grid.Cell{Row: row, Col: right}
		if g.Contains(a) && g.Contains(b) && state.Occupied(a) && state.Occupied(b) {
			pairs = append(pairs, Pair{A: a, B: b})
		}
	}
	return pairs, nil
}

// Solve runs the repair loop for the shuttle at the candidate cycle.
// Each successful repair mutates an independently owned clone inserted
// into the timeline at the cycle; the state under scheduling is never
// touched. The loop ends when no conflict remains, when a placement
// repeats, or when no repair destination is free.
func (s *Solver) Solve(cycle int, ins *circuit.Instruction) (Outcome, error) {
	current, err := s.timeline.StateAt(cycle, s.direction)
	if err != nil {
		return Unsolved, err
	}
	var visited []*placement.State
	for {
		pairs, err := s.conflicts(current, ins)
		if err != nil {
			return Unsolved, err
		}
		if len(pairs) == 0 {
			return Resolved, nil
		}
		for _, seen := range visited {
			if seen.Equals(current) {
				return Unsolved, nil
			}
		}
		visited = append(visited, current.Clone())

		repaired, ok := s.repair(current, ins, pairs[0])
		if !ok {
			return Unsolved, nil
		}
		s.timeline.Insert(cycle, repaired)
		current = repaired
	}
}

// repair relocates the non-primary qubit of the pair one cell along the
// move axis, trying up before down for vertical pairs and left before
// right for horizontal ones. Returns the repaired clone, or false when
// neither destination is free.
func (s *Solver) repair(state *placement.State, ins *circuit.Instruction, pair Pair) (*placement.State, bool) {
	move, ok := circuit.MoveOf(ins.Name)
	if !ok {
		return nil, false
	}
	primary, err := state.Grid().CellOf(ins.Primary())
	if err != nil {
		return nil, false
	}
	victim := pair.A
	if pair.A == primary {
		victim = pair.B
	}
	id, occupied := state.QubitAt(victim)
	if !occupied {
		return nil, false
	}

	tries := []circuit.Move{circuit.MoveUp, circuit.MoveDown}
	if !move.Vertical() {
		tries = []circuit.Move{circuit.MoveLeft, circuit.MoveRight}
	}
	next := state.Clone()
	for _, attempt := range tries {
		if err := next.Shuttle(id, attempt); err == nil {
			return next, true
		}
	}
	return nil, false
}
