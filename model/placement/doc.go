// Package placement tracks which qubit occupies which crossbar cell.  A
// State is one instant of that mapping; a Timeline is the sparse,
// cycle-indexed history of States a scheduling pass accumulates.  States
// are independently owned values: cloning produces a copy that can be
// mutated speculatively without touching the state under scheduling.
package placement
