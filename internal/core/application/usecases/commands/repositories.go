// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"printshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ExecutionRepoFactory provides access to the execution ledger within a transaction.
	ExecutionRepoFactory interface {
		ExecutionRepository() ports.ExecutionRepository
	}

	// WorkerRepoFactory provides access to the worker repository within a transaction.
	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	// ArbiterFactory provides access to the equipment arbiter within a transaction.
	ArbiterFactory interface {
		EquipmentArbiter() ports.EquipmentArbiter
	}

	// OrderUoW manages transactions for order-only operations
	// (create, delete, the completion gate).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LedgerUoW manages transactions for ledger mutations. Starting and
	// completing executions touches the process rows, the execution ledger,
	// and, for starts, the equipment arbiter, all within one transaction.
	LedgerUoW interface {
		TxManager
		OrderRepoFactory
		ExecutionRepoFactory
		ArbiterFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// WorkerUoW manages transactions for worker account operations.
	WorkerUoW interface {
		TxManager
		WorkerRepoFactory
	}

	// WorkerUoWFactory creates new worker unit of work instances.
	WorkerUoWFactory interface {
		Create() WorkerUoW
	}
)
