package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the transaction.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// ExecutionRepository returns an ExecutionRepository bound to the current transaction.
	ExecutionRepository() ExecutionRepository

	// WorkerRepository returns a WorkerRepository bound to the current transaction.
	WorkerRepository() WorkerRepository

	// EquipmentArbiter returns an EquipmentArbiter bound to the current
	// transaction. Reservations are only meaningful inside the transaction
	// that also inserts the claiming execution.
	EquipmentArbiter() EquipmentArbiter
}
