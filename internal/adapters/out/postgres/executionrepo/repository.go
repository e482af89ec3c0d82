package executionrepo

import (
	"context"
	"errors"
	"time"

	"printshop/internal/core/domain/model/execution"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormExecutionRepository implements ExecutionRepository using GORM.
type GormExecutionRepository struct {
	db *gorm.DB
}

// NewGormExecutionRepository creates a new GORM execution repository.
func NewGormExecutionRepository(db *gorm.DB) *GormExecutionRepository {
	return &GormExecutionRepository{db: db}
}

// Add records the start of a work session with its start-time variables.
func (r *GormExecutionRepository) Add(ctx context.Context, exec *execution.Execution) error {
	if err := exec.Validate(); err != nil {
		return err
	}

	dto := fromDomain(exec)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a single execution with its variables.
func (r *GormExecutionRepository) Get(ctx context.Context, id kernel.UUID) (*execution.Execution, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ExecutionDTO
	if err := r.db.WithContext(ctx).Preload("Variables").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("execution", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Complete stamps the completion time on the execution if and only if it is
// still active and owned by the given worker. The conditional update is the
// arbiter under concurrent attempts: the affected-row count tells exactly
// one caller it won.
func (r *GormExecutionRepository) Complete(
	ctx context.Context,
	executionID, workerID kernel.UUID,
	completedAt time.Time,
) error {
	if err := errors.Join(executionID.Validate(), workerID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ExecutionDTO{}).
		Where("id = ? AND worker_id = ? AND completed_at IS NULL", executionID.Bytes(), workerID.Bytes()).
		Update("completed_at", completedAt)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("execution", executionID.String())
	}

	return nil
}

// FindActiveIDForWorker resolves the worker's most recent active execution
// on a process.
func (r *GormExecutionRepository) FindActiveIDForWorker(
	ctx context.Context,
	processID, workerID kernel.UUID,
) (kernel.UUID, error) {
	if err := errors.Join(processID.Validate(), workerID.Validate()); err != nil {
		return kernel.UUID{}, err
	}

	var dto ExecutionDTO
	err := r.db.WithContext(ctx).
		Where("process_id = ? AND worker_id = ? AND completed_at IS NULL",
			processID.Bytes(), workerID.Bytes()).
		Order("started_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("execution", "active for worker")
		}
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(dto.ID[:])
}

// UpsertVariables merges the given variables into the execution's set.
// Same-named entries are overwritten, distinct names accumulate.
func (r *GormExecutionRepository) UpsertVariables(
	ctx context.Context,
	executionID kernel.UUID,
	variables execution.Variables,
) error {
	if err := executionID.Validate(); err != nil {
		return err
	}
	if len(variables) == 0 {
		return nil
	}

	dtos := make([]VariableDTO, 0, len(variables))
	for name, value := range variables {
		dtos = append(dtos, VariableDTO{
			ID:          uuid.New(),
			ExecutionID: executionID.Bytes(),
			Name:        name,
			Value:       value,
		})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "execution_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&dtos).Error
}

// CountByProcess returns the total and still-active execution counts for a
// process, read within the current transaction.
func (r *GormExecutionRepository) CountByProcess(
	ctx context.Context,
	processID kernel.UUID,
) (int, int, error) {
	if err := processID.Validate(); err != nil {
		return 0, 0, err
	}

	var counts struct {
		Total  int
		Active int
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE completed_at IS NULL) AS active
		FROM process_executions
		WHERE process_id = ?
	`, processID.Bytes()).Scan(&counts).Error
	if err != nil {
		return 0, 0, err
	}

	return counts.Total, counts.Active, nil
}
