package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// ProcessStatus represents the lifecycle state of a production process.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed
//
// No transition skips a state and no transition reverses. The status is a
// pure function of the process's execution set (see DeriveProcessStatus);
// it is stored only for query performance and recomputed inside the same
// transaction as every ledger mutation.
type ProcessStatus int

const (
	// ProcessStatusUnknown represents an invalid or undefined status.
	ProcessStatusUnknown ProcessStatus = iota

	// ProcessStatusPending is the initial status of a process with no
	// executions yet.
	ProcessStatusPending

	// ProcessStatusInProgress indicates at least one execution has been
	// started. This transition is a one-way ratchet: the status never
	// reverts to Pending.
	ProcessStatusInProgress

	// ProcessStatusCompleted indicates the process has at least one
	// execution and none are still active. This is a final state; no
	// further execution may be started.
	ProcessStatusCompleted
)

func getProcessStatusStrings() map[ProcessStatus]string {
	return map[ProcessStatus]string{
		ProcessStatusUnknown:    "Unknown",
		ProcessStatusPending:    "pending",
		ProcessStatusInProgress: "in_progress",
		ProcessStatusCompleted:  "completed",
	}
}

func getValidProcessStatusStrings() map[ProcessStatus]string {
	//nolint:exhaustive // ProcessStatusUnknown is intentionally excluded as it's invalid
	return map[ProcessStatus]string{
		ProcessStatusPending:    "pending",
		ProcessStatusInProgress: "in_progress",
		ProcessStatusCompleted:  "completed",
	}
}

// Validate checks if the ProcessStatus value is valid.
func (s ProcessStatus) Validate() error {
	if _, ok := getValidProcessStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("process status is invalid",
			fmt.Errorf("%d is not a valid process status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any ProcessStatus value.
func (s ProcessStatus) String() string {
	if str, ok := getProcessStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Start transitions the status when a new execution is started.
//
// Valid transitions:
//   - Pending -> InProgress (first execution, one-way ratchet)
//   - InProgress -> InProgress (concurrent executions are allowed)
//
// Invalid transitions:
//   - Completed -> anything (completed is terminal; starting work on a
//     completed process is rejected)
func (s ProcessStatus) Start() (ProcessStatus, error) {
	switch s {
	case ProcessStatusPending, ProcessStatusInProgress:
		return ProcessStatusInProgress, nil
	case ProcessStatusCompleted:
		return 0, errs.NewInvalidStateError(
			"start process",
			"process is already completed",
		)
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("process status is invalid",
			fmt.Errorf("%s is not a valid status to start from", s.String()))
	}
}

// DeriveProcessStatus computes a process's status from its execution counts.
// This is the single source of truth the stored status must agree with:
//
//   - no executions: Pending (a process with zero executions is never
//     completed implicitly)
//   - any active execution: InProgress
//   - at least one execution, none active: Completed
//
// Counts must come from a consistent snapshot (the same transaction as the
// ledger write that triggered recomputation).
func DeriveProcessStatus(totalExecutions, activeExecutions int) ProcessStatus {
	switch {
	case totalExecutions == 0:
		return ProcessStatusPending
	case activeExecutions > 0:
		return ProcessStatusInProgress
	default:
		return ProcessStatusCompleted
	}
}
