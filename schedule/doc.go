// Package schedule defines the forward (ASAP) and backward (ALAP)
// scheduling directions and the busy-interval arithmetic that depends on
// them.  The comparison and update rules live here, once, and every
// resource and the placement timeline consume them through a Direction
// value instead of re-implementing the branching locally.
package schedule
