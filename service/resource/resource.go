package resource

import (
	"errors"
	"fmt"

	"github.com/viant/crossbar/model/circuit"
	"github.com/viant/crossbar/model/grid"
	"github.com/viant/crossbar/model/placement"
	"github.com/viant/crossbar/schedule"
)

// ErrBadOperand reports an instruction whose operands cannot be resolved
// against the grid or the placement (off-grid site, malformed name).
var ErrBadOperand = errors.New("resource: bad operand")

// Config carries what a tracker needs at construction. One Config, and
// one tracker set, exists per scheduling pass.
type Config struct {
	Grid      grid.Grid
	Direction schedule.Direction
	Horizon   int
	Qubits    int
}

// Resource is one capability-specific exclusivity tracker.
//
// Available is a pure query; Reserve mutates the busy tables and must be
// called only right after Available confirmed the same arguments, with no
// other reservation for the same units in between. The placement state is
// resolved by the manager from its timeline and passed in, so trackers
// never hold timeline references.
type Resource interface {
	Kind() Kind
	Available(start int, ins *circuit.Instruction, state *placement.State) (bool, error)
	Reserve(start int, ins *circuit.Instruction, state *placement.State) error
}

// busyTable is the per-unit busy boundary shared by every tracker. The
// direction strategy defines both the availability comparison and the
// boundary update, so forward and backward semantics cannot drift apart
// between trackers.
type busyTable struct {
	direction schedule.Direction
	busy      []int
}

func newBusyTable(config Config, units int) busyTable {
	busy := make([]int, units)
	initial := config.Direction.InitialBusy(config.Horizon)
	for i := range busy {
		busy[i] = initial
	}
	return busyTable{direction: config.Direction, busy: busy}
}

func (t *busyTable) available(unit, start, duration int) bool {
	return t.direction.Available(t.busy[unit], start, duration)
}

func (t *busyTable) reserve(unit, start, duration int) {
	t.busy[unit] = t.direction.Tighten(t.busy[unit], t.direction.Reserved(start, duration))
}

func (t *busyTable) units() int {
	return len(t.busy)
}

// operandCell resolves an operand site to its static grid coordinates.
func operandCell(g grid.Grid, site grid.Site) (grid.Cell, error) {
	cell, err := g.CellOf(site)
	if err != nil {
		return grid.Cell{}, fmt.Errorf("%w: %v", ErrBadOperand, err)
	}
	return cell, nil
}

// shuttleMove resolves the displacement named by a shuttle instruction.
func shuttleMove(ins *circuit.Instruction) (circuit.Move, error) {
	move, ok := circuit.MoveOf(ins.Name)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a shuttle operation", ErrBadOperand, ins.Name)
	}
	return move, nil
}
