package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/worker"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var (
	ErrCreateWorkerCommandIsNotConstructed = errors.New(
		"CreateWorkerCommand must be created via NewCreateWorkerCommand constructor",
	)
)

// CreateWorkerCommand represents an administrative request to register a
// worker account. The password arrives already hashed; hashing happens at
// the transport boundary.
type CreateWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID     kernel.UUID
	username     string
	name         string
	passwordHash string
	role         worker.Role

	guard guard.ConstructorGuard
}

// NewCreateWorkerCommand creates a command to register a worker account.
func NewCreateWorkerCommand(
	workerID kernel.UUID,
	username string,
	name string,
	passwordHash string,
	role worker.Role,
) (CreateWorkerCommand, error) {
	cmd := CreateWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkerID(workerID),
		cmd.setUsername(username),
		cmd.setName(name),
		cmd.setPasswordHash(passwordHash),
		cmd.setRole(role),
	); err != nil {
		return CreateWorkerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkerCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkerCommandIsNotConstructed)
}

// WorkerID returns the identity assigned to the new account.
func (c CreateWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Username returns the unique login name.
func (c CreateWorkerCommand) Username() string {
	return c.username
}

// Name returns the display name.
func (c CreateWorkerCommand) Name() string {
	return c.name
}

// PasswordHash returns the bcrypt hash of the account password.
func (c CreateWorkerCommand) PasswordHash() string {
	return c.passwordHash
}

// Role returns the account role.
func (c CreateWorkerCommand) Role() worker.Role {
	return c.role
}

func (c *CreateWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	c.workerID = workerID
	return nil
}

func (c *CreateWorkerCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *CreateWorkerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateWorkerCommand) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	c.passwordHash = passwordHash
	return nil
}

func (c *CreateWorkerCommand) setRole(role worker.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
