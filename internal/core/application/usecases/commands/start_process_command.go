package commands

import (
	"errors"

	"printshop/internal/core/domain/model/execution"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrStartProcessCommandIsNotConstructed = errors.New(
		"StartProcessCommand must be created via NewStartProcessCommand constructor",
	)
)

// StartProcessCommand represents a worker's request to start a new work
// session on a production process. Equipment is optional and only consulted
// for process kinds that declare an equipment requirement; variables carry
// the start-time parameters (material, sheet size, sheet count, ...).
type StartProcessCommand struct { //nolint:recvcheck //using for validation
	processID kernel.UUID
	workerID  kernel.UUID
	equipment string
	variables execution.Variables

	guard guard.ConstructorGuard
}

// NewStartProcessCommand creates a command to start work on a process.
// The process and worker identities must be valid; equipment may be empty.
func NewStartProcessCommand(
	processID kernel.UUID,
	workerID kernel.UUID,
	equipment string,
	variables execution.Variables,
) (StartProcessCommand, error) {
	cmd := StartProcessCommand{
		equipment: equipment,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProcessID(processID),
		cmd.setWorkerID(workerID),
		cmd.setVariables(variables),
	); err != nil {
		return StartProcessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartProcessCommand) Validate() error {
	return c.guard.Validate(ErrStartProcessCommandIsNotConstructed)
}

// ProcessID returns the target process identifier.
func (c StartProcessCommand) ProcessID() kernel.UUID {
	return c.processID
}

// WorkerID returns the identity of the worker starting the session.
func (c StartProcessCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Equipment returns the requested equipment name, or the empty string.
func (c StartProcessCommand) Equipment() string {
	return c.equipment
}

// Variables returns the start-time variables.
func (c StartProcessCommand) Variables() execution.Variables {
	return c.variables
}

func (c *StartProcessCommand) setProcessID(processID kernel.UUID) error {
	if err := processID.Validate(); err != nil {
		return err
	}
	c.processID = processID
	return nil
}

func (c *StartProcessCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	c.workerID = workerID
	return nil
}

func (c *StartProcessCommand) setVariables(variables execution.Variables) error {
	if err := variables.Validate(); err != nil {
		return err
	}
	c.variables = variables
	return nil
}
