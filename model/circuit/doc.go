// Package circuit holds the normalized instruction form the scheduler core
// consumes.  Instructions are produced by an external front-end and are
// read-only here: the core only inspects the operation name, its category,
// the role-ordered operand sites and the duration in cycles.
package circuit
