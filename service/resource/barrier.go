package resource

import (
	"fmt"

	"github.com/viant/crossbar/model/circuit"
	"github.com/viant/crossbar/model/grid"
	"github.com/viant/crossbar/model/placement"
)

// span is one unit reservation window; measurement splits its duration
// into two sequential phases over different barriers.
type span struct {
	unit     int
	start    int
	duration int
}

// barrierResource tracks the whole-row and whole-column boundary gates.
// Horizontal barrier i separates rows i and i+1, vertical barrier j
// separates columns j and j+1; vertical units follow the horizontal ones
// in the busy table. A barrier is busy for the full duration of any move
// crossing it and of any two-qubit interaction across it.
type barrierResource struct {
	grid  grid.Grid
	table busyTable
}

func newBarrierResource(config Config) Resource {
	units := config.Grid.HorizontalBarriers() + config.Grid.VerticalBarriers()
	return &barrierResource{grid: config.Grid, table: newBusyTable(config, units)}
}

func (r *barrierResource) Kind() Kind {
	return KindBarriers
}

func (r *barrierResource) horizontal(i int) (int, bool) {
	if i < 0 || i >= r.grid.HorizontalBarriers() {
		return 0, false
	}
	return i, true
}

func (r *barrierResource) vertical(j int) (int, bool) {
	if j < 0 || j >= r.grid.VerticalBarriers() {
		return 0, false
	}
	return r.grid.HorizontalBarriers() + j, true
}

// crossed returns the barrier a single-cell move out of origin passes
// through.
func (r *barrierResource) crossed(origin grid.Cell, move circuit.Move) (int, bool) {
	switch move {
	case circuit.MoveUp:
		return r.horizontal(origin.Row)
	case circuit.MoveDown:
		return r.horizontal(origin.Row - 1)
	case circuit.MoveLeft:
		return r.vertical(origin.Col - 1)
	default:
		return r.vertical(origin.Col)
	}
}

func (r *barrierResource) plan(start int, ins *circuit.Instruction) ([]span, error) {
	origin, err := operandCell(r.grid, ins.Primary())
	if err != nil {
		return nil, err
	}
	switch ins.Category {
	case circuit.CategoryShuttle, circuit.CategoryOneQubitGate:
		move, ok := circuit.MoveOf(ins.Name)
		if !ok {
			if ins.Category == circuit.CategoryShuttle {
				return nil, fmt.Errorf("%w: %q is not a shuttle operation", ErrBadOperand, ins.Name)
			}
			// Plain one-qubit gates raise no boundary of their own.
			return nil, nil
		}
		unit, ok := r.crossed(origin, move)
		if !ok {
			return nil, fmt.Errorf("%w: %s from %v crosses no barrier", ErrBadOperand, ins.Name, origin)
		}
		return []span{{unit: unit, start: start, duration: ins.Duration}}, nil

	case circuit.CategoryTwoQubitGate:
		second, ok := ins.Secondary()
		if !ok {
			return nil, fmt.Errorf("%w: %s needs two operands", ErrBadOperand, ins.Name)
		}
		other, err := operandCell(r.grid, second)
		if err != nil {
			return nil, err
		}
		var unit int
		switch {
		case origin.Col == other.Col && abs(origin.Row-other.Row) == 1:
			unit, _ = r.horizontal(min(origin.Row, other.Row))
		case origin.Row == other.Row && abs(origin.Col-other.Col) == 1:
			unit, _ = r.vertical(min(origin.Col, other.Col))
		default:
			return nil, fmt.Errorf("%w: %s operands %v and %v are not adjacent", ErrBadOperand, ins.Name, origin, other)
		}
		return []span{{unit: unit, start: start, duration: ins.Duration}}, nil

	case circuit.CategoryMeasurement:
		dCol, ok := circuit.MeasureAncillaShift(ins.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a measurement", ErrBadOperand, ins.Name)
		}
		dRow, _ := circuit.MeasureVerticalShift(ins.Name)
		firstUnit, ok := r.vertical(min(origin.Col, origin.Col+dCol))
		if !ok {
			return nil, fmt.Errorf("%w: %s at %v leaves the grid", ErrBadOperand, ins.Name, origin)
		}
		secondUnit, ok := r.horizontal(min(origin.Row, origin.Row+dRow))
		if !ok {
			return nil, fmt.Errorf("%w: %s at %v leaves the grid", ErrBadOperand, ins.Name, origin)
		}
		half := ins.Duration / 2
		return []span{
			{unit: firstUnit, start: start, duration: half},
			{unit: secondUnit, start: start + half, duration: ins.Duration - half},
		}, nil
	}
	return nil, nil
}

func (r *barrierResource) Available(start int, ins *circuit.Instruction, _ *placement.State) (bool, error) {
	spans, err := r.plan(start, ins)
	if err != nil {
		return false, err
	}
	for _, s := range spans {
		if !r.table.available(s.unit, s.start, s.duration) {
			return false, nil
		}
	}
	return true, nil
}

func (r *barrierResource) Reserve(start int, ins *circuit.Instruction, _ *placement.State) error {
	spans, err := r.plan(start, ins)
	if err != nil {
		return err
	}
	for _, s := range spans {
		r.table.reserve(s.unit, s.start, s.duration)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
