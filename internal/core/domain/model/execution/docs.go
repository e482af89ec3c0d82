// Package execution contains the execution entity of the production tracking
// domain: one worker's time-bounded work session against a production process.
//
// A process may have multiple concurrently active executions (two people
// printing different sheets of the same job), except where equipment
// exclusivity forbids it. An execution is created with its start timestamp
// and completed at most once; completion is never reversed and repeating it
// is rejected rather than silently accepted.
//
// Executions carry an opaque set of named variables. The core is
// schema-agnostic about them: start-time parameters (material, sheet size,
// sheet count) and completion-time parameters (defect count) are merged into
// a single variable set keyed by name, with process-specific meaning layered
// on by the UI.
package execution
