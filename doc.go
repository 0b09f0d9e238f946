// Package crossbar provides the resource-constrained scheduling core for
// a crossbar qubit-shuttling architecture.
//
// Qubits live on an m x n grid of cells and move by single-cell shuttles.
// Scheduling a pass means checking and reserving a family of hardware
// exclusivity resources per instruction (sites, qubits, row/column
// barriers, diagonal control lines and the global drive wave) while a
// cycle-indexed placement timeline tracks where every qubit is. Passes
// run forward (ASAP) from cycle 0 or backward (ALAP) from the horizon
// with mirrored reservation semantics, and a bounded deadlock resolver
// repairs placements that block a shuttle.
//
// End-users typically interact with the core via the high-level Service
// facade exposed by the root package:
//
//	srv := crossbar.New(crossbar.WithTopologyURL("topology.yaml"))
//	pass, _ := srv.Pass(ctx, schedule.Forward)
//	ok, _ := pass.Available(ctx, cycle, ins)
//	commit, _ := pass.Reserve(ctx, cycle, ins)
//
// For more details see the README and individual sub-packages.
package crossbar
