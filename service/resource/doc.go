// Package resource implements the hardware exclusivity trackers of the
// crossbar: sites, qubits, barriers, control lines and the global drive
// wave.  Each tracker owns a per-unit busy boundary and answers
// availability queries for one scheduling direction; trackers never
// reference each other or the placement timeline, they only hold unit
// indices.  The set of kinds is closed: unknown kind names are rejected
// when the topology descriptor is validated, not at first use.
package resource
