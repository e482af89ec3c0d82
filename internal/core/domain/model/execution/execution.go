package execution

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// ErrExecutionIsNotConstructed is returned when an Execution instance was not
// created through NewExecution or RestoreExecution.
var ErrExecutionIsNotConstructed = errors.New("Execution must be created via NewExecution or RestoreExecution")

// Execution is one worker's work session on one process.
//
// Invariants:
//   - the start timestamp is set at creation and never null
//   - the completion timestamp is set exactly once; a second completion is
//     rejected, never silently accepted
//   - the worker reference is required at creation but weak afterwards: it
//     may be absent on restored history whose worker account was deleted
type Execution struct {
	id          kernel.UUID
	processID   kernel.UUID
	workerID    *kernel.UUID
	equipment   string
	startedAt   time.Time
	completedAt *time.Time
	variables   Variables

	isConstructed bool
}

// NewExecution starts a new work session on a process. Equipment is optional
// (empty string when the process declares none); startVariables may be nil.
func NewExecution(
	id kernel.UUID,
	processID kernel.UUID,
	workerID kernel.UUID,
	equipment string,
	startVariables Variables,
	startedAt time.Time,
) (*Execution, error) {
	exec := &Execution{
		equipment:     equipment,
		startedAt:     startedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		exec.setID(id),
		exec.setProcessID(processID),
		workerID.Validate(),
		startVariables.Validate(),
	); err != nil {
		return nil, err
	}

	exec.workerID = &workerID
	exec.variables = startVariables.Clone()

	return exec, nil
}

// RestoreExecution reconstructs an execution from persistence. The worker
// reference may be nil when the account was deleted after the session was
// recorded; the history survives.
func RestoreExecution(
	id kernel.UUID,
	processID kernel.UUID,
	workerID *kernel.UUID,
	equipment string,
	startedAt time.Time,
	completedAt *time.Time,
	variables Variables,
) (*Execution, error) {
	exec := &Execution{
		equipment:     equipment,
		startedAt:     startedAt,
		completedAt:   completedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		exec.setID(id),
		exec.setProcessID(processID),
		variables.Validate(),
	); err != nil {
		return nil, err
	}

	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return nil, err
		}
	}
	exec.workerID = workerID
	exec.variables = variables.Clone()

	return exec, nil
}

// Validate ensures the Execution instance was properly constructed.
func (e *Execution) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrExecutionIsNotConstructed
	}
	return nil
}

// ID returns the execution's unique identifier.
func (e *Execution) ID() kernel.UUID {
	return e.id
}

// ProcessID returns the identifier of the process being worked.
func (e *Execution) ProcessID() kernel.UUID {
	return e.processID
}

// WorkerID returns the performing worker's identifier, or nil when the
// account was deleted after the fact.
func (e *Execution) WorkerID() *kernel.UUID {
	return e.workerID
}

// Equipment returns the claimed equipment name, or the empty string.
func (e *Execution) Equipment() string {
	return e.equipment
}

// StartedAt returns when the session started.
func (e *Execution) StartedAt() time.Time {
	return e.startedAt
}

// CompletedAt returns when the session completed, or nil while active.
func (e *Execution) CompletedAt() *time.Time {
	return e.completedAt
}

// Variables returns the execution's merged variable set.
func (e *Execution) Variables() Variables {
	return e.variables.Clone()
}

// IsActive reports whether the session has not yet been completed.
func (e *Execution) IsActive() bool {
	return e.completedAt == nil
}

// BelongsTo reports whether the session is owned by the given worker.
// A session whose worker reference was severed belongs to nobody.
func (e *Execution) BelongsTo(workerID kernel.UUID) bool {
	return e.workerID != nil && e.workerID.IsEqual(workerID)
}

// Complete sets the completion timestamp and merges the completion-time
// variables (e.g. defect count) into the session's variable set. At most one
// completion is accepted; a repeat is rejected.
func (e *Execution) Complete(now time.Time, completionVariables Variables) error {
	if e.completedAt != nil {
		return errs.NewInvalidStateError("complete execution", "execution is already completed")
	}
	if err := completionVariables.Validate(); err != nil {
		return err
	}

	e.completedAt = &now
	e.variables = e.variables.Merge(completionVariables)
	return nil
}

func (e *Execution) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Execution) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}
	e.processID = processID
	return nil
}
