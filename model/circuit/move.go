package circuit

import "strings"

// Shuttle operation names recognised by the core.
const (
	ShuttleUp    = "shuttle_up"
	ShuttleDown  = "shuttle_down"
	ShuttleLeft  = "shuttle_left"
	ShuttleRight = "shuttle_right"
)

// Move is a single-cell displacement direction on the grid.
type Move int

const (
	// MoveUp increases the row index.
	MoveUp Move = iota
	// MoveDown decreases the row index.
	MoveDown
	// MoveLeft decreases the column index.
	MoveLeft
	// MoveRight increases the column index.
	MoveRight
)

// MoveOf derives the displacement from an operation name suffix, so that
// derived operations such as z_shuttle_left resolve too.
func MoveOf(name string) (Move, bool) {
	switch {
	case strings.HasSuffix(name, "_up"):
		return MoveUp, true
	case strings.HasSuffix(name, "_down"):
		return MoveDown, true
	case strings.HasSuffix(name, "_left"):
		return MoveLeft, true
	case strings.HasSuffix(name, "_right"):
		return MoveRight, true
	}
	return 0, false
}

// Opposite returns the reverse displacement. Backward scheduling replays
// shuttles from the far end of history, so committing one applies the
// reverse move to the post-move state.
func (m Move) Opposite() Move {
	switch m {
	case MoveUp:
		return MoveDown
	case MoveDown:
		return MoveUp
	case MoveLeft:
		return MoveRight
	default:
		return MoveLeft
	}
}

// Vertical reports whether the move changes the row.
func (m Move) Vertical() bool {
	return m == MoveUp || m == MoveDown
}

// Delta returns the row/column displacement of the move.
func (m Move) Delta() (dRow, dCol int) {
	switch m {
	case MoveUp:
		return 1, 0
	case MoveDown:
		return -1, 0
	case MoveLeft:
		return 0, -1
	default:
		return 0, 1
	}
}

// String implements fmt.Stringer.
func (m Move) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	default:
		return "right"
	}
}
