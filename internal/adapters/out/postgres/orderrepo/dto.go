// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The order number carries a unique index so duplicate registrations fail at
// the database level regardless of concurrent requests.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Status      int       `gorm:"type:int;not null;index"`
	Description string    `gorm:"type:text"`
	PhotoURL    string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	CompletedAt *time.Time
	Processes   []ProcessDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ProcessDTO represents the database structure for persisting production
// processes. Links to the owning order via foreign key.
type ProcessDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Sequence int       `gorm:"type:int;not null"`
	Status   int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for process entities.
// Overrides GORM's default naming convention to use "order_processes".
func (ProcessDTO) TableName() string {
	return "order_processes"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the order attributes and all owned processes.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	processes := make([]ProcessDTO, 0, len(aggregate.Processes()))

	for _, process := range aggregate.Processes() {
		processes = append(processes, processFromDomain(process))
	}

	return OrderDTO{
		ID:          orderID,
		OrderNumber: aggregate.OrderNumber(),
		Status:      int(aggregate.Status()),
		Description: aggregate.Description(),
		PhotoURL:    aggregate.PhotoURL(),
		CreatedAt:   aggregate.CreatedAt(),
		CompletedAt: aggregate.CompletedAt(),
		Processes:   processes,
	}
}

func processFromDomain(process *order.Process) ProcessDTO {
	return ProcessDTO{
		ID:       process.ID().Bytes(),
		OrderID:  process.OrderID().Bytes(),
		Name:     process.Name().String(),
		Sequence: process.Sequence(),
		Status:   int(process.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all processes using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	processes := make([]*order.Process, 0, len(dto.Processes))
	for _, processDto := range dto.Processes {
		process, processErr := processToDomain(processDto)
		if processErr != nil {
			return nil, processErr
		}
		processes = append(processes, process)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		order.Status(dto.Status),
		dto.Description,
		dto.PhotoURL,
		dto.CreatedAt,
		dto.CompletedAt,
		processes,
	)
}

// processToDomain converts a process DTO to a domain entity.
// Uses RestoreProcess to reconstruct the entity with its persisted status.
func processToDomain(dto ProcessDTO) (*order.Process, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	name, err := order.NewProcessName(dto.Name)
	if err != nil {
		return nil, err
	}

	return order.RestoreProcess(id, orderID, name, dto.Sequence, order.ProcessStatus(dto.Status))
}
