package resource

import (
	"fmt"

	"github.com/viant/crossbar/model/circuit"
	"github.com/viant/crossbar/model/grid"
	"github.com/viant/crossbar/model/placement"
	"github.com/viant/crossbar/schedule"
)

// siteResource tracks per-cell occupancy windows: a cell is busy for the
// duration any operation holds or traverses it.
type siteResource struct {
	grid  grid.Grid
	table busyTable
}

func newSiteResource(config Config) Resource {
	return &siteResource{grid: config.Grid, table: newBusyTable(config, config.Grid.Sites())}
}

func (r *siteResource) Kind() Kind {
	return KindSites
}

// sitePlan lists the cells an instruction touches and those that must be
// unoccupied for it to proceed. blocked marks an instruction that cannot
// run against the current placement at all (no free auxiliary site).
type sitePlan struct {
	cells   []grid.Cell
	empty   []grid.Cell
	blocked bool
}

func (r *siteResource) plan(ins *circuit.Instruction, state *placement.State) (sitePlan, error) {
	origin, err := operandCell(r.grid, ins.Primary())
	if err != nil {
		return sitePlan{}, err
	}
	switch ins.Category {
	case circuit.CategoryShuttle:
		move, err := shuttleMove(ins)
		if err != nil {
			return sitePlan{}, err
		}
		dRow, dCol := move.Delta()
		dest := origin.Shift(dRow, dCol)
		if !r.grid.Contains(dest) {
			return sitePlan{}, fmt.Errorf("%w: %s from %v leaves the grid", ErrBadOperand, ins.Name, origin)
		}
		// Forward the qubit sits on the origin and vacates into the
		// destination; backward the state is post-move, so replaying the
		// shuttle vacates into the origin instead.
		target := dest
		if r.table.direction == schedule.Backward {
			target = origin
		}
		return sitePlan{cells: []grid.Cell{origin, dest}, empty: []grid.Cell{target}}, nil

	case circuit.CategoryOneQubitGate:
		if move, ok := circuit.MoveOf(ins.Name); ok {
			dRow, dCol := move.Delta()
			dest := origin.Shift(dRow, dCol)
			if !r.grid.Contains(dest) {
				return sitePlan{}, fmt.Errorf("%w: %s from %v leaves the grid", ErrBadOperand, ins.Name, origin)
			}
			return sitePlan{cells: []grid.Cell{origin, dest}, empty: []grid.Cell{dest}}, nil
		}
		// A plain gate needs an empty horizontal neighbour for the
		// auxiliary shuttle between the two drive waves, left preferred.
		for _, dCol := range []int{-1, 1} {
			aux := origin.Shift(0, dCol)
			if r.grid.Contains(aux) && !state.Occupied(aux) {
				return sitePlan{cells: []grid.Cell{origin, aux}}, nil
			}
		}
		return sitePlan{blocked: true}, nil

	case circuit.CategoryTwoQubitGate:
		second, ok := ins.Secondary()
		if !ok {
			return sitePlan{}, fmt.Errorf("%w: %s needs two operands", ErrBadOperand, ins.Name)
		}
		other, err := operandCell(r.grid, second)
		if err != nil {
			return sitePlan{}, err
		}
		return sitePlan{cells: []grid.Cell{origin, other}}, nil

	case circuit.CategoryMeasurement:
		dCol, ok := circuit.MeasureAncillaShift(ins.Name)
		if !ok {
			return sitePlan{}, fmt.Errorf("%w: %q is not a measurement", ErrBadOperand, ins.Name)
		}
		dRow, _ := circuit.MeasureVerticalShift(ins.Name)
		ancilla := origin.Shift(0, dCol)
		vertical := origin.Shift(dRow, 0)
		if !r.grid.Contains(ancilla) || !r.grid.Contains(vertical) {
			return sitePlan{}, fmt.Errorf("%w: %s at %v leaves the grid", ErrBadOperand, ins.Name, origin)
		}
		return sitePlan{cells: []grid.Cell{origin, ancilla, vertical}}, nil
	}
	return sitePlan{cells: []grid.Cell{origin}}, nil
}

func (r *siteResource) Available(start int, ins *circuit.Instruction, state *placement.State) (bool, error) {
	plan, err := r.plan(ins, state)
	if err != nil {
		return false, err
	}
	if plan.blocked {
		return false, nil
	}
	for _, cell := range plan.empty {
		if state.Occupied(cell) {
			return false, nil
		}
	}
	for _, cell := range plan.cells {
		if !r.table.available(int(r.grid.SiteOf(cell)), start, ins.Duration) {
			return false, nil
		}
	}
	return true, nil
}

func (r *siteResource) Reserve(start int, ins *circuit.Instruction, state *placement.State) error {
	plan, err := r.plan(ins, state)
	if err != nil {
		return err
	}
	if plan.blocked {
		return fmt.Errorf("%w: %s reserved without a free auxiliary site", ErrBadOperand, ins.Name)
	}
	for _, cell := range plan.cells {
		r.table.reserve(int(r.grid.SiteOf(cell)), start, ins.Duration)
	}
	return nil
}
