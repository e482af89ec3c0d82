package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is. Every typed error in this
// package unwraps to exactly one of these, so callers can branch on the
// category without inspecting concrete types.
var (
	// ErrObjectNotFound indicates that a referenced object does not exist,
	// is not owned by the caller, or is no longer in a state where it can
	// be acted upon.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid indicates that a provided value fails validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsRequired indicates that a required value is missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrInvalidState indicates an action attempted against an object whose
	// current lifecycle state forbids it.
	ErrInvalidState = errors.New("invalid state")

	// ErrEquipmentConflict indicates that a named piece of equipment is
	// already held by another active execution.
	ErrEquipmentConflict = errors.New("equipment is busy")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError is returned when an object referenced by an operation
// cannot be found. ParamName names the reference that failed to resolve and
// ID carries the value that was looked up.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a provided value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidStateError is returned when an action is attempted against an
// object whose current state forbids it, e.g. starting an execution on a
// completed process or completing an order with outstanding processes.
// Reason carries the specific, human-readable explanation shown to callers.
type InvalidStateError struct {
	Action string
	Reason string
	Cause  error
}

// NewInvalidStateError creates an InvalidStateError describing the rejected
// action and the reason the current state forbids it.
func NewInvalidStateError(action, reason string) *InvalidStateError {
	return &InvalidStateError{Action: action, Reason: reason}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(action, reason string, cause error) *InvalidStateError {
	return &InvalidStateError{Action: action, Reason: reason, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: cannot %s: %s (cause: %s)",
			ErrInvalidState, e.Action, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: cannot %s: %s", ErrInvalidState, e.Action, e.Reason))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// EquipmentConflictError is returned when a start request names a piece of
// equipment already held by another active execution. It carries the holder's
// order number and worker name so the caller can render a "busy" message.
type EquipmentConflictError struct {
	Equipment   string
	OrderNumber string
	WorkerName  string
}

// NewEquipmentConflictError creates an EquipmentConflictError identifying the
// execution currently holding the equipment.
func NewEquipmentConflictError(equipment, orderNumber, workerName string) *EquipmentConflictError {
	return &EquipmentConflictError{
		Equipment:   equipment,
		OrderNumber: orderNumber,
		WorkerName:  workerName,
	}
}

func (e *EquipmentConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s is running order %s, started by %s",
		ErrEquipmentConflict, e.Equipment, e.OrderNumber, e.WorkerName))
}

func (e *EquipmentConflictError) Unwrap() error {
	return ErrEquipmentConflict
}
