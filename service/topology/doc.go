// Package topology loads and validates the hardware descriptor: grid
// dimensions, the initial qubit placement, the resource kinds to
// instantiate and the schedule horizon. Validation is fatal; a manager
// is never constructed over a partially valid descriptor.
package topology
