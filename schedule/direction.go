package schedule

import "fmt"

// Direction selects which end of the schedule committed state accumulates
// from: Forward grows from cycle 0, Backward from the schedule horizon.
type Direction int

const (
	// Forward is ASAP scheduling, time increasing from cycle 0.
	Forward Direction = iota
	// Backward is ALAP scheduling, time decreasing from the horizon.
	Backward
)

// ParseDirection converts a descriptor value into a Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "forward", "asap":
		return Forward, nil
	case "backward", "alap":
		return Backward, nil
	}
	return Forward, fmt.Errorf("unknown scheduling direction %q", name)
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Available reports whether a unit whose busy boundary is busyUntil can
// accept an operation of the given span.
//
// Forward: the unit is busy for all cycles < busyUntil, so the start must
// be at or after it.  Backward: the unit is busy for all cycles >=
// busyUntil, so the operation must end at or before it.
func (d Direction) Available(busyUntil, start, duration int) bool {
	if d == Forward {
		return start >= busyUntil
	}
	return start+duration <= busyUntil
}

// Reserved returns the new busy boundary after reserving [start,
// start+duration): the cycle the unit next becomes free going forward, or
// the latest cycle it is still reserved going backward.
func (d Direction) Reserved(start, duration int) int {
	if d == Forward {
		return start + duration
	}
	return start
}

// Tighten merges a new busy boundary into an existing one, keeping the
// stricter of the two: the later cycle going forward, the earlier going
// backward. An instruction may reserve the same unit more than once
// (sequential phases), so a later phase must never loosen the boundary
// an earlier one set.
func (d Direction) Tighten(current, boundary int) int {
	if d == Forward {
		if boundary > current {
			return boundary
		}
		return current
	}
	if boundary < current {
		return boundary
	}
	return current
}

// InitialBusy returns the busy boundary of an untouched unit: everything
// is free from cycle 0 forward, or up to the horizon backward.
func (d Direction) InitialBusy(horizon int) int {
	if d == Forward {
		return 0
	}
	return horizon
}

// InitialCycle returns the cycle the seed placement state occupies.
func (d Direction) InitialCycle(horizon int) int {
	if d == Forward {
		return 0
	}
	return horizon
}

// CommitCycle returns the cycle at which a placement change becomes
// effective: after the move completes going forward, at its start going
// backward (history accumulates from the opposite end).
func (d Direction) CommitCycle(start, duration int) int {
	if d == Forward {
		return start + duration
	}
	return start
}
