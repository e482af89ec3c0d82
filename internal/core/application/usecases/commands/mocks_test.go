package commands_test

import (
	"context"
	"time"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/execution"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/worker"
	"printshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetProcess(ctx context.Context, processID kernel.UUID) (*order.Process, error) {
	args := m.Called(ctx, processID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Process), args.Error(1)
}

func (m *MockOrderRepository) GetProcessForUpdate(ctx context.Context, processID kernel.UUID) (*order.Process, error) {
	args := m.Called(ctx, processID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Process), args.Error(1)
}

func (m *MockOrderRepository) UpdateProcessStatus(ctx context.Context, process *order.Process) error {
	args := m.Called(ctx, process)
	return args.Error(0)
}

type MockExecutionRepository struct{ mock.Mock }

func (m *MockExecutionRepository) Add(ctx context.Context, exec *execution.Execution) error {
	args := m.Called(ctx, exec)
	return args.Error(0)
}

func (m *MockExecutionRepository) Get(ctx context.Context, id kernel.UUID) (*execution.Execution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*execution.Execution), args.Error(1)
}

func (m *MockExecutionRepository) Complete(
	ctx context.Context, executionID, workerID kernel.UUID, completedAt time.Time,
) error {
	args := m.Called(ctx, executionID, workerID, completedAt)
	return args.Error(0)
}

func (m *MockExecutionRepository) FindActiveIDForWorker(
	ctx context.Context, processID, workerID kernel.UUID,
) (kernel.UUID, error) {
	args := m.Called(ctx, processID, workerID)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockExecutionRepository) UpsertVariables(
	ctx context.Context, executionID kernel.UUID, variables execution.Variables,
) error {
	args := m.Called(ctx, executionID, variables)
	return args.Error(0)
}

func (m *MockExecutionRepository) CountByProcess(
	ctx context.Context, processID kernel.UUID,
) (int, int, error) {
	args := m.Called(ctx, processID)
	return args.Int(0), args.Int(1), args.Error(2)
}

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Add(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetByUsername(ctx context.Context, username string) (*worker.Worker, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) GetAll(ctx context.Context) ([]*worker.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*worker.Worker), args.Error(1)
}

func (m *MockWorkerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEquipmentArbiter struct{ mock.Mock }

func (m *MockEquipmentArbiter) TryReserve(ctx context.Context, equipment string) error {
	args := m.Called(ctx, equipment)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLedgerUoW struct{ mock.Mock }

func (m *MockLedgerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockLedgerUoW) ExecutionRepository() ports.ExecutionRepository {
	args := m.Called()
	return args.Get(0).(ports.ExecutionRepository)
}

func (m *MockLedgerUoW) EquipmentArbiter() ports.EquipmentArbiter {
	args := m.Called()
	return args.Get(0).(ports.EquipmentArbiter)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockWorkerUoW struct{ mock.Mock }

func (m *MockWorkerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkerUoW) WorkerRepository() ports.WorkerRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkerRepository)
}

type MockWorkerUoWFactory struct{ mock.Mock }

func (m *MockWorkerUoWFactory) Create() commands.WorkerUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkerUoW)
}
