package resource

import (
	"fmt"

	"github.com/viant/crossbar/model/circuit"
	"github.com/viant/crossbar/model/grid"
	"github.com/viant/crossbar/model/placement"
)

// lineResource tracks the shared diagonal control lines. Every cell on
// the (column - row) diagonal is driven by the same line, so an operation
// occupies the line of each cell it involves; measurement drives its two
// phases over different line pairs, each reserved for its own half of the
// duration.
type lineResource struct {
	grid  grid.Grid
	table busyTable
}

func newLineResource(config Config) Resource {
	return &lineResource{grid: config.Grid, table: newBusyTable(config, config.Grid.Lines())}
}

func (r *lineResource) Kind() Kind {
	return KindQubitLines
}

// lineSpans appends one reservation window per distinct line of the cells.
func (r *lineResource) lineSpans(spans []span, start, duration int, cells ...grid.Cell) []span {
	for _, cell := range cells {
		unit := r.grid.LineOf(cell)
		duplicate := false
		for _, s := range spans {
			if s.unit == unit && s.start == start {
				duplicate = true
				break
			}
		}
		if !duplicate {
			spans = append(spans, span{unit: unit, start: start, duration: duration})
		}
	}
	return spans
}

func (r *lineResource) plan(start int, ins *circuit.Instruction, state *placement.State) ([]span, error) {
	origin, err := operandCell(r.grid, ins.Primary())
	if err != nil {
		return nil, err
	}
	switch ins.Category {
	case circuit.CategoryShuttle:
		move, err := shuttleMove(ins)
		if err != nil {
			return nil, err
		}
		dRow, dCol := move.Delta()
		dest := origin.Shift(dRow, dCol)
		if !r.grid.Contains(dest) {
			return nil, fmt.Errorf("%w: %s from %v leaves the grid", ErrBadOperand, ins.Name, origin)
		}
		return r.lineSpans(nil, start, ins.Duration, origin, dest), nil

	case circuit.CategoryOneQubitGate:
		if move, ok := circuit.MoveOf(ins.Name); ok {
			// Gate by shuttling: out for the first half, back for the second.
			dRow, dCol := move.Delta()
			dest := origin.Shift(dRow, dCol)
			if !r.grid.Contains(dest) {
				return nil, fmt.Errorf("%w: %s from %v leaves the grid", ErrBadOperand, ins.Name, origin)
			}
			half := ins.Duration / 2
			spans := r.lineSpans(nil, start, half, origin, dest)
			return r.lineSpans(spans, start+half, ins.Duration-half, dest, origin), nil
		}
		// Plain gate: the line drives the auxiliary shuttle between waves.
		for _, dCol := range []int{-1, 1} {
			aux := origin.Shift(0, dCol)
			if r.grid.Contains(aux) && !state.Occupied(aux) {
				return r.lineSpans(nil, start, ins.Duration, origin, aux), nil
			}
		}
		return r.lineSpans(nil, start, ins.Duration, origin), nil

	case circuit.CategoryTwoQubitGate:
		second, ok := ins.Secondary()
		if !ok {
			return nil, fmt.Errorf("%w: %s needs two operands", ErrBadOperand, ins.Name)
		}
		other, err := operandCell(r.grid, second)
		if err != nil {
			return nil, err
		}
		return r.lineSpans(nil, start, ins.Duration, origin, other), nil

	case circuit.CategoryMeasurement:
		dCol, ok := circuit.MeasureAncillaShift(ins.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a measurement", ErrBadOperand, ins.Name)
		}
		dRow, _ := circuit.MeasureVerticalShift(ins.Name)
		ancilla := origin.Shift(0, dCol)
		vertical := origin.Shift(dRow, 0)
		if !r.grid.Contains(ancilla) || !r.grid.Contains(vertical) {
			return nil, fmt.Errorf("%w: %s at %v leaves the grid", ErrBadOperand, ins.Name, origin)
		}
		// Column-pair lines first, row-pair lines second, independently.
		half := ins.Duration / 2
		spans := r.lineSpans(nil, start, half, origin, ancilla)
		return r.lineSpans(spans, start+half, ins.Duration-half, origin, vertical), nil
	}
	return nil, nil
}

func (r *lineResource) Available(start int, ins *circuit.Instruction, state *placement.State) (bool, error) {
	spans, err := r.plan(start, ins, state)
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

func (r *lineResource) Reserve(start int, ins *circuit.Instruction, state *placement.State) error {
	spans, err := r.plan(start, ins, state)
	if err != nil {
		return err
	}
	for _, s := range spans {
		r.table.reserve(s.unit, s.start, s.duration)
	}
	return nil
}
