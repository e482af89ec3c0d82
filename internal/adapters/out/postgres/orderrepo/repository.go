package orderrepo

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its processes to the database.
// A duplicate order number trips the unique index and is reported as a
// value-is-invalid error.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("orderNumber", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves lifecycle changes of an existing order. Only the order row is
// written; process statuses have their own write path.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "Description", "PhotoURL", "CompletedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its processes in workflow order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order while holding a row lock on it for the
// remainder of the transaction.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := db.Preload("Processes", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_processes.sequence")
	}).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order. Processes go with it by cascade, and through
// them the executions and variables.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// GetProcess retrieves a single process by its identifier.
func (r *GormOrderRepository) GetProcess(ctx context.Context, processID kernel.UUID) (*order.Process, error) {
	return r.getProcess(ctx, processID, false)
}

// GetProcessForUpdate retrieves a process while holding a row lock on it.
// Ledger mutations take this lock first so concurrent starts and completions
// on the same process serialize.
func (r *GormOrderRepository) GetProcessForUpdate(ctx context.Context, processID kernel.UUID) (*order.Process, error) {
	return r.getProcess(ctx, processID, true)
}

func (r *GormOrderRepository) getProcess(
	ctx context.Context,
	processID kernel.UUID,
	forUpdate bool,
) (*order.Process, error) {
	if err := processID.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ProcessDTO
	if err := db.First(&dto, "id = ?", processID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("process", processID.String())
		}
		return nil, err
	}

	return processToDomain(dto)
}

// UpdateProcessStatus persists a recomputed process status.
func (r *GormOrderRepository) UpdateProcessStatus(ctx context.Context, process *order.Process) error {
	if err := process.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ProcessDTO{}).
		Where("id = ?", process.ID().Bytes()).
		Update("status", int(process.Status()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("process", process.ID().String())
	}

	return nil
}

// isUniqueViolation reports whether the error is a Postgres unique index
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
