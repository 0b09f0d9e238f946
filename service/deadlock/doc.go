// Package deadlock detects and repairs placement conflicts that block a
// shuttle operation. The solver runs a bounded greedy loop: it scans the
// effective placement for adjacent occupied cell pairs that block the
// requested move, relocates the non-primary qubit of the first pair to a
// free neighbouring cell, and re-checks. A cache of visited placements
// breaks repair cycles; an unsolved outcome is an explicit result the
// scheduler must treat as failure for that instruction.
package deadlock
