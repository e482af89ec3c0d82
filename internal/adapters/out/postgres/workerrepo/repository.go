package workerrepo

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/worker"
	"printshop/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormWorkerRepository implements WorkerRepository using GORM.
type GormWorkerRepository struct {
	db *gorm.DB
}

// NewGormWorkerRepository creates a new GORM worker repository.
func NewGormWorkerRepository(db *gorm.DB) *GormWorkerRepository {
	return &GormWorkerRepository{db: db}
}

// Add saves a new worker account. A duplicate username trips the unique
// index and is reported as a value-is-invalid error.
func (r *GormWorkerRepository) Add(ctx context.Context, aggregate *worker.Worker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("username", err)
		}
		return err
	}

	return nil
}

// Get retrieves a worker by identifier.
func (r *GormWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("worker", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves a worker by login name.
func (r *GormWorkerRepository) GetByUsername(ctx context.Context, username string) (*worker.Worker, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto WorkerDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("worker", username)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all workers, newest first.
func (r *GormWorkerRepository) GetAll(ctx context.Context) ([]*worker.Worker, error) {
	var dtos []WorkerDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	workers := make([]*worker.Worker, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}

	return workers, nil
}

// Delete removes a worker account. The execution ledger keeps its rows; the
// worker reference on them is nulled by the foreign key.
func (r *GormWorkerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&WorkerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("worker", id.String())
	}

	return nil
}

// isUniqueViolation reports whether the error is a Postgres unique index
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
