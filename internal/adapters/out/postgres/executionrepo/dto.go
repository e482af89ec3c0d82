// Package executionrepo persists the execution ledger: work sessions and
// their variables. Executions reference workers weakly; deleting a worker
// nulls the reference and keeps the session on record.
package executionrepo

import (
	"time"

	"printshop/internal/core/domain/model/execution"
	"printshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ExecutionDTO represents the database structure for persisting work
// sessions. WorkerID is nullable with ON DELETE SET NULL so the ledger
// survives account removal.
type ExecutionDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProcessID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	WorkerID    *uuid.UUID `gorm:"type:uuid;index;constraint:OnDelete:SET NULL"`
	Equipment   string     `gorm:"type:varchar(255);not null;index"`
	StartedAt   time.Time  `gorm:"not null"`
	CompletedAt *time.Time
	Variables   []VariableDTO `gorm:"foreignKey:ExecutionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for execution entities.
// Overrides GORM's default naming convention to use "process_executions".
func (ExecutionDTO) TableName() string {
	return "process_executions"
}

// VariableDTO represents one named parameter attached to an execution.
// The (execution_id, name) pair is unique so completion-time values
// overwrite start-time values of the same name.
type VariableDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExecutionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_execution_variable"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_execution_variable"`
	Value       string    `gorm:"type:text;not null"`
}

// TableName specifies the database table name for variable entities.
// Overrides GORM's default naming convention to use "process_variables".
func (VariableDTO) TableName() string {
	return "process_variables"
}

// fromDomain converts an execution domain entity to its database representation.
func fromDomain(exec *execution.Execution) ExecutionDTO {
	executionID := exec.ID().Bytes()

	var workerID *uuid.UUID
	if id := exec.WorkerID(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	variables := make([]VariableDTO, 0, len(exec.Variables()))
	for name, value := range exec.Variables() {
		variables = append(variables, VariableDTO{
			ID:          uuid.New(),
			ExecutionID: executionID,
			Name:        name,
			Value:       value,
		})
	}

	return ExecutionDTO{
		ID:          executionID,
		ProcessID:   exec.ProcessID().Bytes(),
		WorkerID:    workerID,
		Equipment:   exec.Equipment(),
		StartedAt:   exec.StartedAt(),
		CompletedAt: exec.CompletedAt(),
		Variables:   variables,
	}
}

// toDomain converts a database DTO to an execution domain entity.
func toDomain(dto ExecutionDTO) (*execution.Execution, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	processID, err := kernel.UUIDFromBytes(dto.ProcessID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}
		workerID = &wID
	}

	variables := make(execution.Variables, len(dto.Variables))
	for _, variable := range dto.Variables {
		variables[variable.Name] = variable.Value
	}

	return execution.RestoreExecution(
		id,
		processID,
		workerID,
		dto.Equipment,
		dto.StartedAt,
		dto.CompletedAt,
		variables,
	)
}
