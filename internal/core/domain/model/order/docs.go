// Package order contains the order aggregate of the production tracking domain.
//
// An Order is a customer job moving through an ordered list of named
// production Processes (printing, lamination, die-cutting, packaging, ...).
// The aggregate owns its processes; each process derives its lifecycle status
// from the set of work executions recorded against it:
//
//   - a process becomes InProgress the first time any execution is started on
//     it, and never reverts to Pending;
//   - a process becomes Completed when a completion leaves it with at least
//     one execution and none still active;
//   - Completed is terminal, so no further execution may be started.
//
// The order itself completes only through an explicit request, gated on all
// of its processes being completed.
package order
