package resource

import (
	"fmt"

	"github.com/viant/crossbar/model/circuit"
	"github.com/viant/crossbar/model/placement"
)

// qubitResource keeps one busy boundary per qubit id so that no qubit is
// the operand of two overlapping-duration operations. Operand sites are
// resolved to their occupants through the placement at the candidate
// cycle; an operand site with no occupant (a shuttle's empty target) does
// not constrain any qubit.
type qubitResource struct {
	table busyTable
}

func newQubitResource(config Config) Resource {
	return &qubitResource{table: newBusyTable(config, config.Qubits)}
}

func (r *qubitResource) Kind() Kind {
	return KindQubits
}

func (r *qubitResource) operands(ins *circuit.Instruction, state *placement.State) ([]int, error) {
	var ids []int
	for _, site := range ins.Operands {
		cell, err := operandCell(state.Grid(), site)
		if err != nil {
			return nil, err
		}
		id, occupied := state.QubitAt(cell)
		if !occupied {
			continue
		}
		if id >= r.table.units() {
			return nil, fmt.Errorf("%w: q[%d] outside the configured qubit count", ErrBadOperand, id)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *qubitResource) Available(start int, ins *circuit.Instruction, state *placement.State) (bool, error) {
	ids, err := r.operands(ins, state)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if !r.table.available(id, start, ins.Duration) {
			return false, nil
		}
	}
	return true, nil
}

func (r *qubitResource) Reserve(start int, ins *circuit.Instruction, state *placement.State) error {
	ids, err := r.operands(ins, state)
	if err != nil {
		return err
	}
	for _, id := range ids {
		r.table.reserve(id, start, ins.Duration)
	}
	return nil
}
