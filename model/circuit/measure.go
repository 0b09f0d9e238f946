package circuit

import "strings"

// Measurement operation names. The horizontal part of the name selects the
// ancilla side, the vertical part the empty neighbour used for readout.
const (
	MeasureLeftUp    = "measure_left_up"
	MeasureLeftDown  = "measure_left_down"
	MeasureRightUp   = "measure_right_up"
	MeasureRightDown = "measure_right_down"
)

// MeasureAncillaShift returns the column displacement toward the ancilla
// site named by a measurement operation.
func MeasureAncillaShift(name string) (int, bool) {
	switch {
	case strings.HasPrefix(name, "measure_left_"):
		return -1, true
	case strings.HasPrefix(name, "measure_right_"):
		return 1, true
	}
	return 0, false
}

// MeasureVerticalShift returns the row displacement toward the empty
// neighbour named by a measurement operation.
func MeasureVerticalShift(name string) (int, bool) {
	switch {
	case strings.HasSuffix(name, "_up"):
		return 1, true
	case strings.HasSuffix(name, "_down"):
		return -1, true
	}
	return 0, false
}
