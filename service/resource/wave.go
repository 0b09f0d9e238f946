package resource

import (
	"github.com/viant/crossbar/model/circuit"
	"github.com/viant/crossbar/model/placement"
)

// waveResource tracks the global drive-signal classes, one unit per
// instruction category. Operations of the same category share the wave
// and may overlap; a different category must wait until every other
// class's window has drained.
type waveResource struct {
	table busyTable
}

var waveClasses = []circuit.Category{
	circuit.CategoryShuttle,
	circuit.CategoryOneQubitGate,
	circuit.CategoryTwoQubitGate,
	circuit.CategoryMeasurement,
}

func newWaveResource(config Config) Resource {
	return &waveResource{table: newBusyTable(config, len(waveClasses))}
}

func (r *waveResource) Kind() Kind {
	return KindWave
}

func classOf(category circuit.Category) int {
	for i, class := range waveClasses {
		if class == category {
			return i
		}
	}
	return 0
}

func (r *waveResource) Available(start int, ins *circuit.Instruction, _ *placement.State) (bool, error) {
	mine := classOf(ins.Category)
	for unit := 0; unit < r.table.units(); unit++ {
		if unit == mine {
			continue
		}
		if !r.table.available(unit, start, ins.Duration) {
			return false, nil
		}
	}
	return true, nil
}

func (r *waveResource) Reserve(start int, ins *circuit.Instruction, _ *placement.State) error {
	r.table.reserve(classOf(ins.Category), start, ins.Duration)
	return nil
}
