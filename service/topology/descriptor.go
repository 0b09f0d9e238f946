package topology

import (
	"fmt"

	"github.com/viant/crossbar/model/grid"
	"github.com/viant/crossbar/model/placement"
	"github.com/viant/crossbar/service/resource"
)

// ErrInvalidDescriptor is wrapped by every validation failure.
var ErrInvalidDescriptor = fmt.Errorf("invalid topology descriptor")

// QubitPlacement pins one qubit to its initial cell.
type QubitPlacement struct {
	ID      int  `yaml:"id" json:"id"`
	Row     int  `yaml:"row" json:"row"`
	Col     int  `yaml:"col" json:"col"`
	Ancilla bool `yaml:"ancilla,omitempty" json:"ancilla,omitempty"`
}

// Cell returns the placement coordinate.
func (p QubitPlacement) Cell() grid.Cell {
	return grid.Cell{Row: p.Row, Col: p.Col}
}

// Descriptor is the declarative hardware topology a scheduling pass is
// configured from.
type Descriptor struct {
	Grid      grid.Grid        `yaml:"grid" json:"grid"`
	Qubits    []QubitPlacement `yaml:"qubits" json:"qubits"`
	Resources []string         `yaml:"resources" json:"resources"`
	Horizon   int              `yaml:"horizon" json:"horizon"`
}

// Validate checks the descriptor for fatal configuration errors: an
// absent grid, an absent initial placement, duplicate qubit ids or
// cells, out-of-bounds placements and unknown resource kinds.
func (d *Descriptor) Validate() error {
	if d.Grid.Rows <= 0 || d.Grid.Cols <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidDescriptor, d.Grid.Rows, d.Grid.Cols)
	}
	if len(d.Qubits) == 0 {
		return fmt.Errorf("%w: no initial qubit placement", ErrInvalidDescriptor)
	}
	ids := map[int]bool{}
	cells := map[grid.Cell]bool{}
	for _, placed := range d.Qubits {
		if placed.ID < 0 {
			return fmt.Errorf("%w: negative qubit id %d", ErrInvalidDescriptor, placed.ID)
		}
		if ids[placed.ID] {
			return fmt.Errorf("%w: duplicate qubit id %d", ErrInvalidDescriptor, placed.ID)
		}
		ids[placed.ID] = true
		cell := placed.Cell()
		if !d.Grid.Contains(cell) {
			return fmt.Errorf("%w: q[%d] at %v outside %dx%d grid", ErrInvalidDescriptor, placed.ID, cell, d.Grid.Rows, d.Grid.Cols)
		}
		if cells[cell] {
			return fmt.Errorf("%w: duplicate placement at %v", ErrInvalidDescriptor, cell)
		}
		cells[cell] = true
	}
	for _, name := range d.Resources {
		if _, err := resource.ParseKind(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
		}
	}
	return nil
}

// Kinds returns the declared resource kinds, defaulting to the full
// registry when the descriptor names none.
func (d *Descriptor) Kinds() ([]resource.Kind, error) {
	if len(d.Resources) == 0 {
		return resource.Kinds(), nil
	}
	var kinds []resource.Kind
	for _, name := range d.Resources {
		kind, err := resource.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// QubitCount returns the number of qubit ids the placement addresses,
// sized by the highest id so busy tables can be indexed directly.
func (d *Descriptor) QubitCount() int {
	count := 0
	for _, placed := range d.Qubits {
		if placed.ID+1 > count {
			count = placed.ID + 1
		}
	}
	return count
}

// InitialState builds the placement seed state for a scheduling pass.
func (d *Descriptor) InitialState() (*placement.State, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	state := placement.NewState(d.Grid)
	for _, placed := range d.Qubits {
		if err := state.AddQubit(placed.Cell(), placed.ID, placed.Ancilla); err != nil {
			return nil, err
		}
	}
	return state, nil
}
