package commands

import (
	"errors"

	"printshop/internal/core/domain/model/execution"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrCompleteProcessCommandIsNotConstructed = errors.New(
		"CompleteProcessCommand must be created via NewCompleteProcessCommand constructor",
	)
)

// CompleteProcessCommand represents a worker's request to finish a work
// session. When no execution is named the worker's most recent active
// session on the process is resolved. Variables carry the completion-time
// parameters (defect count, ...).
type CompleteProcessCommand struct { //nolint:recvcheck //using for validation
	processID   kernel.UUID
	executionID *kernel.UUID
	workerID    kernel.UUID
	variables   execution.Variables

	guard guard.ConstructorGuard
}

// NewCompleteProcessCommand creates a command to complete a work session.
// executionID may be nil to target the caller's latest active session.
func NewCompleteProcessCommand(
	processID kernel.UUID,
	executionID *kernel.UUID,
	workerID kernel.UUID,
	variables execution.Variables,
) (CompleteProcessCommand, error) {
	cmd := CompleteProcessCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProcessID(processID),
		cmd.setExecutionID(executionID),
		cmd.setWorkerID(workerID),
		cmd.setVariables(variables),
	); err != nil {
		return CompleteProcessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteProcessCommand) Validate() error {
	return c.guard.Validate(ErrCompleteProcessCommandIsNotConstructed)
}

// ProcessID returns the target process identifier.
func (c CompleteProcessCommand) ProcessID() kernel.UUID {
	return c.processID
}

// ExecutionID returns the named execution, or nil to resolve the caller's
// most recent active one.
func (c CompleteProcessCommand) ExecutionID() *kernel.UUID {
	return c.executionID
}

// WorkerID returns the identity of the worker completing the session.
func (c CompleteProcessCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Variables returns the completion-time variables.
func (c CompleteProcessCommand) Variables() execution.Variables {
	return c.variables
}

func (c *CompleteProcessCommand) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}
	c.processID = processID
	return nil
}

func (c *CompleteProcessCommand) setExecutionID(executionID *kernel.UUID) error {
	if executionID != nil {
		if err := executionID.Validate(); err != nil {
			return err
		}
	}
	c.executionID = executionID
	return nil
}

func (c *CompleteProcessCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	c.workerID = workerID
	return nil
}

func (c *CompleteProcessCommand) setVariables(variables execution.Variables) error {
	if err := variables.Validate(); err != nil {
		return err
	}
	c.variables = variables
	return nil
}
