package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrDeleteWorkerCommandIsNotConstructed = errors.New(
		"DeleteWorkerCommand must be created via NewDeleteWorkerCommand constructor",
	)
)

// DeleteWorkerCommand represents an administrative request to remove a
// worker account. Execution history stays; its worker reference is severed.
type DeleteWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteWorkerCommand creates a command to delete a worker account.
func NewDeleteWorkerCommand(workerID kernel.UUID) (DeleteWorkerCommand, error) {
	cmd := DeleteWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setWorkerID(workerID); err != nil {
		return DeleteWorkerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteWorkerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkerCommandIsNotConstructed)
}

// WorkerID returns the target account identifier.
func (c DeleteWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

func (c *DeleteWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	c.workerID = workerID
	return nil
}
