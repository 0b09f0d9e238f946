package placement

import (
	"fmt"

	"github.com/viant/crossbar/schedule"
)

// Timeline is the sparse, cycle-indexed history of placement states one
// scheduling pass accumulates. Entries exist only at cycles where a move
// was committed; queries scan toward the pass's time origin.
type Timeline struct {
	maxCycle int
	states   map[int]*State
}

// NewTimeline returns an empty timeline bounded by the schedule horizon.
func NewTimeline(maxCycle int) *Timeline {
	return &Timeline{maxCycle: maxCycle, states: map[int]*State{}}
}

// MaxCycle returns the schedule horizon.
func (t *Timeline) MaxCycle() int {
	return t.maxCycle
}

// Len returns the number of recorded states.
func (t *Timeline) Len() int {
	return len(t.states)
}

// Insert records the state at the cycle, replacing any previous entry.
// The resource manager commits in schedule order, so a replacement only
// happens for a legitimately re-evaluated cycle.
func (t *Timeline) Insert(cycle int, state *State) {
	t.states[cycle] = state
}

// Get returns the state recorded exactly at the cycle.
func (t *Timeline) Get(cycle int) (*State, bool) {
	state, ok := t.states[cycle]
	return state, ok
}

// StateAt returns the state effective at the cycle: the nearest entry at
// or before it for forward scheduling, the nearest at or after it for
// backward. Exhausting the scan range returns ErrNoPlacementState.
func (t *Timeline) StateAt(cycle int, direction schedule.Direction) (*State, error) {
	if direction == schedule.Forward {
		for i := cycle; i >= 0; i-- {
			if state, ok := t.states[i]; ok {
				return state, nil
			}
		}
	} else {
		for i := cycle; i <= t.maxCycle; i++ {
			if state, ok := t.states[i]; ok {
				return state, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: cycle %d (%v)", ErrNoPlacementState, cycle, direction)
}
