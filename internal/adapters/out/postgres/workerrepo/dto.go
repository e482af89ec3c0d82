// Package workerrepo provides data transfer objects and mapping functions
// for worker account persistence.
package workerrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/worker"

	"github.com/google/uuid"
)

// WorkerDTO represents the database structure for persisting worker accounts.
// The username carries a unique index; logins are case-sensitive.
type WorkerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         int       `gorm:"type:int;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the database table name for worker entities.
// Overrides GORM's default naming convention to use "workers".
func (WorkerDTO) TableName() string {
	return "workers"
}

// fromDomain converts a worker domain aggregate to its database representation.
func fromDomain(aggregate *worker.Worker) WorkerDTO {
	return WorkerDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		Name:         aggregate.Name(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         int(aggregate.Role()),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a worker domain aggregate.
func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return worker.RestoreWorker(
		id,
		dto.Username,
		dto.Name,
		dto.PasswordHash,
		worker.Role(dto.Role),
		dto.CreatedAt,
	)
}
