package ports

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/execution"
	"printshop/internal/core/domain/model/kernel"
)

// ExecutionRepository is the append-only execution ledger: it records who
// started and completed each work session, with the attached variables.
// Completion is a conditional write whose affected-row count distinguishes
// success from loss under concurrent attempts.
type ExecutionRepository interface {
	// Add records the start of a work session, persisting the execution row
	// and its start-time variables.
	Add(ctx context.Context, exec *execution.Execution) error

	// Get retrieves a single execution with its variables.
	Get(ctx context.Context, id kernel.UUID) (*execution.Execution, error)

	// Complete sets the completion timestamp on the execution if and only if
	// it is still active and owned by the given worker. Exactly one of any
	// set of concurrent attempts succeeds; the rest observe an
	// object-not-found error, as do attempts against someone else's session
	// or an already-finished one.
	Complete(ctx context.Context, executionID, workerID kernel.UUID, completedAt time.Time) error

	// FindActiveIDForWorker resolves the worker's most recent active
	// execution on a process, for completion requests that do not name an
	// execution explicitly.
	FindActiveIDForWorker(ctx context.Context, processID, workerID kernel.UUID) (kernel.UUID, error)

	// UpsertVariables merges the given variables into the execution's set,
	// overwriting same-named entries and keeping distinct keys.
	UpsertVariables(ctx context.Context, executionID kernel.UUID, variables execution.Variables) error

	// CountByProcess returns the total and still-active execution counts for
	// a process, read within the current transaction.
	CountByProcess(ctx context.Context, processID kernel.UUID) (total int, active int, err error)
}
