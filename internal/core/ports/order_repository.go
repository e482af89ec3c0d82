// Package ports defines the persistence contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their owned processes.
type OrderRepository interface {
	// Add persists a new order aggregate together with its processes.
	// A duplicate order number is rejected with a value-is-invalid error.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists lifecycle changes (status, completion timestamp) of an
	// existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its processes in workflow order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order with its processes while holding a row
	// lock on the order for the remainder of the transaction. Used by the
	// completion gate so concurrent completion requests serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and, by cascade, its processes, executions,
	// and variables.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetProcess retrieves a single process by its identifier.
	GetProcess(ctx context.Context, processID kernel.UUID) (*order.Process, error)

	// GetProcessForUpdate retrieves a process while holding a row lock on it
	// for the remainder of the transaction. Every ledger mutation locks the
	// process row first so status recomputation always observes a consistent
	// snapshot of the execution set.
	GetProcessForUpdate(ctx context.Context, processID kernel.UUID) (*order.Process, error)

	// UpdateProcessStatus persists a recomputed process status.
	UpdateProcessStatus(ctx context.Context, process *order.Process) error
}
