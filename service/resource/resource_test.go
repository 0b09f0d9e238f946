package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/crossbar/model/circuit"
	"github.com/viant/crossbar/model/grid"
	"github.com/viant/crossbar/model/placement"
	"github.com/viant/crossbar/schedule"
)

func testConfig(t *testing.T, rows, cols int, direction schedule.Direction) Config {
	g, err := grid.New(rows, cols)
	assert.NoError(t, err)
	return Config{Grid: g, Direction: direction, Horizon: 100, Qubits: 4}
}

func testState(t *testing.T, config Config, cells ...grid.Cell) *placement.State {
	state := placement.NewState(config.Grid)
	for id, cell := range cells {
		assert.NoError(t, state.AddQubit(cell, id, false))
	}
	return state
}

func shuttle(g grid.Grid, name string, origin grid.Cell, duration int) *circuit.Instruction {
	move, _ := circuit.MoveOf(name)
	dRow, dCol := move.Delta()
	return &circuit.Instruction{
		Name:     name,
		Category: circuit.CategoryShuttle,
		Operands: []grid.Site{g.SiteOf(origin), g.SiteOf(origin.Shift(dRow, dCol))},
		Duration: duration,
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"sites", "qubits", "barriers", "qubit_lines", "wave"} {
		kind, err := ParseKind(name)
		assert.NoError(t, err, name)
		assert.Equal(t, Kind(name), kind)
	}
	_, err := ParseKind("interconnect")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestNew_AllKinds(t *testing.T) {
	config := testConfig(t, 3, 3, schedule.Forward)
	for _, kind := range Kinds() {
		tracker, err := New(kind, config)
		assert.NoError(t, err, kind)
		assert.Equal(t, kind, tracker.Kind())
	}
	_, err := New(Kind("interconnect"), config)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSiteResource_DestinationOccupied(t *testing.T) {
	config := testConfig(t, 1, 2, schedule.Forward)
	tracker, _ := New(KindSites, config)
	state := testState(t, config, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 1})

	ins := shuttle(config.Grid, circuit.ShuttleRight, grid.Cell{Row: 0, Col: 0}, 2)
	ok, err := tracker.Available(0, ins, state)
	assert.NoError(t, err)
	assert.False(t, ok, "occupied destination must be unavailable")
}

func TestSiteResource_BusyWindow(t *testing.T) {
	config := testConfig(t, 1, 3, schedule.Forward)
	tracker, _ := New(KindSites, config)
	state := testState(t, config, grid.Cell{Row: 0, Col: 0})

	ins := shuttle(config.Grid, circuit.ShuttleRight, grid.Cell{Row: 0, Col: 0}, 2)
	ok, err := tracker.Available(0, ins, state)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, tracker.Reserve(0, ins, state))

	// The origin and destination sites are busy until cycle 2.
	after := testState(t, config, grid.Cell{Row: 0, Col: 1})
	next := shuttle(config.Grid, circuit.ShuttleRight, grid.Cell{Row: 0, Col: 1}, 2)
	ok, err = tracker.Available(1, next, after)
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = tracker.Available(2, next, after)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestSiteResource_ShuttleOffGrid(t *testing.T) {
	config := testConfig(t, 1, 2, schedule.Forward)
	tracker, _ := New(KindSites, config)
	state := testState(t, config, grid.Cell{Row: 0, Col: 1})

	ins := &circuit.Instruction{
		Name:     circuit.ShuttleRight,
		Category: circuit.CategoryShuttle,
		Operands: []grid.Site{config.Grid.SiteOf(grid.Cell{Row: 0, Col: 1})},
		Duration: 2,
	}
	_, err := tracker.Available(0, ins, state)
	assert.ErrorIs(t, err, ErrBadOperand)
}

// Once a forward reservation sets a unit busy until T, no earlier start
// touching that unit succeeds again within the pass.
func TestQubitResource_BusyMonotonicity(t *testing.T) {
	config := testConfig(t, 1, 3, schedule.Forward)
	tracker, _ := New(KindQubits, config)
	state := testState(t, config, grid.Cell{Row: 0, Col: 0})

	gate := &circuit.Instruction{
		Name:     "x",
		Category: circuit.CategoryOneQubitGate,
		Operands: []grid.Site{config.Grid.SiteOf(grid.Cell{Row: 0, Col: 0})},
		Duration: 5,
	}
	assert.NoError(t, tracker.Reserve(3, gate, state))
	for start := 0; start < 8; start++ {
		ok, err := tracker.Available(start, gate, state)
		assert.NoError(t, err)
		assert.False(t, ok, "start %d", start)
	}
	ok, err := tracker.Available(8, gate, state)
	assert.NoError(t, err)
	assert.True(t, ok)
}

// Replaying the same conflict-free operation through the backward rules
// from the opposite bound yields the mirrored busy table.
func TestDirectionSymmetry(t *testing.T) {
	horizon := 100
	forwardCfg := testConfig(t, 1, 3, schedule.Forward)
	backwardCfg := testConfig(t, 1, 3, schedule.Backward)

	forward := newQubitResource(forwardCfg).(*qubitResource)
	backward := newQubitResource(backwardCfg).(*qubitResource)

	state := testState(t, forwardCfg, grid.Cell{Row: 0, Col: 0})
	gate := &circuit.Instruction{
		Name:     "x",
		Category: circuit.CategoryOneQubitGate,
		Operands: []grid.Site{forwardCfg.Grid.SiteOf(grid.Cell{Row: 0, Col: 0})},
		Duration: 5,
	}

	start := 10
	assert.NoError(t, forward.Reserve(start, gate, state))
	assert.NoError(t, backward.Reserve(horizon-start-gate.Duration, gate, state))

	// busy boundaries mirror each other around the horizon.
	assert.Equal(t, start+gate.Duration, forward.table.busy[0])
	assert.Equal(t, horizon-start-gate.Duration, backward.table.busy[0])
	assert.Equal(t, horizon-forward.table.busy[0]+gate.Duration, backward.table.busy[0]+gate.Duration)

	// Mirrored queries agree: forward rejects earlier overlap, backward
	// rejects the mirrored later overlap.
	okF, _ := forward.Available(start+gate.Duration-1, gate, state)
	okB, _ := backward.Available(horizon-(start+gate.Duration-1)-gate.Duration, gate, state)
	assert.Equal(t, okF, okB)
	assert.False(t, okF)
	okF, _ = forward.Available(start+gate.Duration, gate, state)
	okB, _ = backward.Available(horizon-(start+gate.Duration)-gate.Duration, gate, state)
	assert.Equal(t, okF, okB)
	assert.True(t, okF)
}

func TestLineResource_SharedDiagonal(t *testing.T) {
	config := testConfig(t, 3, 3, schedule.Forward)
	tracker, _ := New(KindQubitLines, config)
	g := config.Grid
	state := testState(t, config,
		grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 1},
		grid.Cell{Row: 1, Col: 1}, grid.Cell{Row: 1, Col: 2})

	// Both gates touch the (1,1)/(0,0) diagonal through one operand.
	first := &circuit.Instruction{
		Name:     "cphase",
		Category: circuit.CategoryTwoQubitGate,
		Operands: []grid.Site{g.SiteOf(grid.Cell{Row: 0, Col: 0}), g.SiteOf(grid.Cell{Row: 0, Col: 1})},
		Duration: 4,
	}
	second := &circuit.Instruction{
		Name:     "cphase",
		Category: circuit.CategoryTwoQubitGate,
		Operands: []grid.Site{g.SiteOf(grid.Cell{Row: 1, Col: 1}), g.SiteOf(grid.Cell{Row: 1, Col: 2})},
		Duration: 4,
	}
	assert.Equal(t, g.LineOf(grid.Cell{Row: 0, Col: 0}), g.LineOf(grid.Cell{Row: 1, Col: 1}))

	ok, err := tracker.Available(0, first, state)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, tracker.Reserve(0, first, state))

	// Same cycle: the shared line is taken.
	ok, err = tracker.Available(0, second, state)
	assert.NoError(t, err)
	assert.False(t, ok)

	// At the first gate's busy boundary the line frees up.
	ok, err = tracker.Available(4, second, state)
	assert.NoError(t, err)
	assert.True(t, ok)
}

// A backward measurement drives the origin's diagonal in both of its
// phases; the second phase must not loosen the boundary the first one
// set, so the line stays held from the whole occupation's start.
func TestLineResource_BackwardTwoPhaseBoundary(t *testing.T) {
	config := testConfig(t, 2, 2, schedule.Backward)
	tracker, _ := New(KindQubitLines, config)
	g := config.Grid
	state := testState(t, config, grid.Cell{Row: 0, Col: 1}, grid.Cell{Row: 0, Col: 0})

	measure := &circuit.Instruction{
		Name:     circuit.MeasureLeftUp,
		Category: circuit.CategoryMeasurement,
		Operands: []grid.Site{g.SiteOf(grid.Cell{Row: 0, Col: 1}), g.SiteOf(grid.Cell{Row: 0, Col: 0})},
		Duration: 6,
	}
	assert.NoError(t, tracker.Reserve(50, measure, state))

	// Shares the origin's diagonal through (0,1).
	gate := &circuit.Instruction{
		Name:     "cphase",
		Category: circuit.CategoryTwoQubitGate,
		Operands: []grid.Site{g.SiteOf(grid.Cell{Row: 0, Col: 1}), g.SiteOf(grid.Cell{Row: 1, Col: 1})},
		Duration: 4,
	}
	ok, err := tracker.Available(48, gate, state)
	assert.NoError(t, err)
	assert.False(t, ok, "line is occupied from the measurement's start")
	ok, err = tracker.Available(46, gate, state)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestWaveResource_CategorySharing(t *testing.T) {
	config := testConfig(t, 2, 2, schedule.Forward)
	tracker, _ := New(KindWave, config)
	state := testState(t, config, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 1})
	g := config.Grid

	gate := &circuit.Instruction{
		Name: "x", Category: circuit.CategoryOneQubitGate,
		Operands: []grid.Site{g.SiteOf(grid.Cell{Row: 0, Col: 0})}, Duration: 4,
	}
	otherGate := &circuit.Instruction{
		Name: "y", Category: circuit.CategoryOneQubitGate,
		Operands: []grid.Site{g.SiteOf(grid.Cell{Row: 1, Col: 1})}, Duration: 4,
	}
	move := shuttle(g, circuit.ShuttleUp, grid.Cell{Row: 0, Col: 0}, 2)

	assert.NoError(t, tracker.Reserve(0, gate, state))

	// Same class shares the wave window.
	ok, err := tracker.Available(0, otherGate, state)
	assert.NoError(t, err)
	assert.True(t, ok)

	// A different class must wait for the window to drain.
	ok, err = tracker.Available(1, move, state)
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = tracker.Available(4, move, state)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestBarrierResource_CrossingBusy(t *testing.T) {
	config := testConfig(t, 3, 3, schedule.Forward)
	tracker, _ := New(KindBarriers, config)
	g := config.Grid
	state := testState(t, config, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 2})

	up := shuttle(g, circuit.ShuttleUp, grid.Cell{Row: 0, Col: 0}, 2)
	assert.NoError(t, tracker.Reserve(0, up, state))

	// The whole-row barrier between rows 0 and 1 is shared grid-wide.
	otherUp := shuttle(g, circuit.ShuttleUp, grid.Cell{Row: 0, Col: 2}, 2)
	ok, err := tracker.Available(1, otherUp, state)
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = tracker.Available(2, otherUp, state)
	assert.NoError(t, err)
	assert.True(t, ok)

	// A horizontal move uses a column barrier, untouched by the vertical one.
	right := shuttle(g, circuit.ShuttleRight, grid.Cell{Row: 0, Col: 0}, 2)
	ok, err = tracker.Available(0, right, state)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestBarrierResource_Measurement(t *testing.T) {
	config := testConfig(t, 2, 2, schedule.Forward)
	tracker, _ := New(KindBarriers, config)
	g := config.Grid
	state := testState(t, config, grid.Cell{Row: 0, Col: 1}, grid.Cell{Row: 0, Col: 0})

	measure := &circuit.Instruction{
		Name:     circuit.MeasureLeftUp,
		Category: circuit.CategoryMeasurement,
		Operands: []grid.Site{g.SiteOf(grid.Cell{Row: 0, Col: 1}), g.SiteOf(grid.Cell{Row: 0, Col: 0})},
		Duration: 6,
	}
	assert.NoError(t, tracker.Reserve(0, measure, state))

	// First phase holds the column barrier, second phase the row barrier.
	right := shuttle(g, circuit.ShuttleRight, grid.Cell{Row: 0, Col: 0}, 2)
	ok, err := tracker.Available(1, right, state)
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = tracker.Available(3, right, state)
	assert.NoError(t, err)
	assert.True(t, ok)

	up := shuttle(g, circuit.ShuttleUp, grid.Cell{Row: 0, Col: 0}, 2)
	ok, err = tracker.Available(4, up, state)
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = tracker.Available(6, up, state)
	assert.NoError(t, err)
	assert.True(t, ok)
}
