package worker

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// ErrWorkerIsNotConstructed is returned when a Worker instance was not
// created through NewWorker or RestoreWorker.
var ErrWorkerIsNotConstructed = errors.New("Worker must be created via NewWorker or RestoreWorker")

// Worker is a shop-floor account that performs process executions.
type Worker struct {
	id           kernel.UUID
	username     string
	name         string
	passwordHash string
	role         Role
	createdAt    time.Time

	isConstructed bool
}

// NewWorker creates a worker account. The password hash must already be a
// bcrypt hash; the domain never sees plaintext passwords.
func NewWorker(
	id kernel.UUID,
	username string,
	name string,
	passwordHash string,
	role Role,
	createdAt time.Time,
) (*Worker, error) {
	w := &Worker{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setUsername(username),
		w.setName(name),
		w.setPasswordHash(passwordHash),
		w.setRole(role),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWorker reconstructs a worker from persistence.
func RestoreWorker(
	id kernel.UUID,
	username string,
	name string,
	passwordHash string,
	role Role,
	createdAt time.Time,
) (*Worker, error) {
	return NewWorker(id, username, name, passwordHash, role, createdAt)
}

// Validate ensures the Worker instance was properly constructed.
func (w *Worker) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWorkerIsNotConstructed
	}
	return nil
}

// ID returns the worker's unique identifier.
func (w *Worker) ID() kernel.UUID {
	return w.id
}

// Username returns the unique login name.
func (w *Worker) Username() string {
	return w.username
}

// Name returns the display name shown in execution views and conflict messages.
func (w *Worker) Name() string {
	return w.name
}

// PasswordHash returns the stored bcrypt hash.
func (w *Worker) PasswordHash() string {
	return w.passwordHash
}

// Role returns the worker's role.
func (w *Worker) Role() Role {
	return w.role
}

// CreatedAt returns when the account was created.
func (w *Worker) CreatedAt() time.Time {
	return w.createdAt
}

func (w *Worker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Worker) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	w.username = username
	return nil
}

func (w *Worker) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}

func (w *Worker) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	w.passwordHash = passwordHash
	return nil
}

func (w *Worker) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	w.role = role
	return nil
}
