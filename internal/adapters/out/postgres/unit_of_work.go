// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work wraps one business transaction and hands out
// repositories bound to it, so a process start, its equipment reservation,
// and the status recompute either all commit or all roll back.
package postgres

import (
	"context"

	"printshop/internal/adapters/out/postgres/executionrepo"
	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/adapters/out/postgres/workerrepo"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// Useful for implementing patterns like event sourcing or the outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks aggregate
// changes for post-commit processing.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again on an active instance is a no-op rather than a nested
// transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns an error if no transaction is active or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns an error if no transaction is active or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ExecutionRepository returns an execution ledger repository bound to the
// current transaction.
func (uow *GormUnitOfWork) ExecutionRepository() ports.ExecutionRepository {
	return executionrepo.NewGormExecutionRepository(uow.conn())
}

// WorkerRepository returns a worker repository bound to the current
// transaction.
func (uow *GormUnitOfWork) WorkerRepository() ports.WorkerRepository {
	return workerrepo.NewGormWorkerRepository(uow.conn())
}

// EquipmentArbiter returns an equipment arbiter bound to the current
// transaction. Reservations taken outside a transaction would release their
// advisory lock immediately, so the arbiter is only meaningful between Begin
// and Commit.
func (uow *GormUnitOfWork) EquipmentArbiter() ports.EquipmentArbiter {
	return NewGormEquipmentArbiter(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations on add and update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
