package order

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	InProgress ──> Completed
//
// The transition is one-way; a completed order is never reopened.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusInProgress is the initial status when an order is created.
	// Orders stay in this status while any production process is outstanding.
	StatusInProgress

	// StatusCompleted indicates all processes finished and the order was
	// explicitly completed. This is a final state.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusInProgress: "in_progress",
		StatusCompleted:  "completed",
	}
}

// StatusFromString parses a status name as submitted in filters.
// Unknown names map to StatusUnknown, which fails Validate.
func StatusFromString(raw string) Status {
	for status, name := range getValidStatusStrings() {
		if name == raw {
			return status
		}
	}
	return StatusUnknown
}

// Validate checks if the Status value is valid.
// Valid statuses are InProgress and Completed; StatusUnknown and any other
// values are invalid. Used when reconstructing orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// Returns (0, error) if the order is already completed or the status is
// invalid. Completed is a final state with no further transitions.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return 0, errs.NewInvalidStateError(
			"complete order",
			fmt.Sprintf("%s is not a valid status to complete", s.String()),
		)
	}

	return StatusCompleted, nil
}
