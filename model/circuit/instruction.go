package circuit

import "github.com/viant/crossbar/model/grid"

// Category classifies an instruction by the hardware capability it drives.
type Category string

const (
	// CategoryShuttle is a physical one-cell qubit move.
	CategoryShuttle Category = "shuttle"
	// CategoryOneQubitGate is a single-qubit operation.
	CategoryOneQubitGate Category = "one_qubit_gate"
	// CategoryTwoQubitGate is a two-qubit interaction.
	CategoryTwoQubitGate Category = "two_qubit_gate"
	// CategoryMeasurement is a readout operation.
	CategoryMeasurement Category = "measurement"
)

// Instruction is the normalized form of a scheduled operation. Operands are
// site addresses, role-ordered: a shuttle carries [origin, destination], a
// two-qubit gate [first, second] and a measurement [measured, ancilla].
type Instruction struct {
	Name     string
	Category Category
	Operands []grid.Site
	Duration int
}

// Primary returns the first operand site.
func (i *Instruction) Primary() grid.Site {
	return i.Operands[0]
}

// Secondary returns the second operand site when present.
func (i *Instruction) Secondary() (grid.Site, bool) {
	if len(i.Operands) < 2 {
		return 0, false
	}
	return i.Operands[1], true
}

// IsShuttle reports whether the instruction moves a qubit.
func (i *Instruction) IsShuttle() bool {
	return i.Category == CategoryShuttle
}
