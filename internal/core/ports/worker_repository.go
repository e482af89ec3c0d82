package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/worker"
)

// WorkerRepository defines the persistence contract for worker accounts.
type WorkerRepository interface {
	// Add persists a new worker. A duplicate username is rejected with a
	// value-is-invalid error.
	Add(ctx context.Context, aggregate *worker.Worker) error

	// Get retrieves a worker by identifier.
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)

	// GetByUsername retrieves a worker by login name.
	GetByUsername(ctx context.Context, username string) (*worker.Worker, error)

	// GetAll retrieves all workers, newest first.
	GetAll(ctx context.Context) ([]*worker.Worker, error)

	// Delete removes a worker account. Execution history referencing the
	// worker keeps its rows; the reference is severed, not cascaded.
	Delete(ctx context.Context, id kernel.UUID) error
}
