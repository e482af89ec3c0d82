package commands_test

import (
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/execution"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func inProgressProcess(t *testing.T) *order.Process {
	t.Helper()
	process, err := order.RestoreProcess(
		kernel.NewUUID(), kernel.NewUUID(), order.Printing, 1, order.ProcessStatusInProgress)
	require.NoError(t, err)
	return process
}

func TestCompleteProcessCommandHandler_Handle_ExplicitExecution(t *testing.T) {
	ctx := t.Context()
	process := inProgressProcess(t)
	execID := kernel.NewUUID()
	workerID := kernel.NewUUID()
	vars := execution.Variables{"defect_count": "2"}
	cmd, _ := commands.NewCompleteProcessCommand(process.ID(), &execID, workerID, vars)

	orderRepo := new(MockOrderRepository)
	execRepo := new(MockExecutionRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetProcessForUpdate", mock.Anything, process.ID()).Return(process, nil).Once(),
		uow.On("ExecutionRepository").Return(execRepo).Once(),
		execRepo.On("Complete", mock.Anything, execID, workerID, mock.AnythingOfType("time.Time")).
			Return(nil).Once(),
		execRepo.On("UpsertVariables", mock.Anything, execID, vars).Return(nil).Once(),
		execRepo.On("CountByProcess", mock.Anything, process.ID()).Return(1, 0, nil).Once(),
		orderRepo.On("UpdateProcessStatus", mock.Anything, process).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteProcessCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.ProcessStatusCompleted, process.Status())
	orderRepo.AssertExpectations(t)
	execRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteProcessCommandHandler_Handle_ResolvesActiveExecution(t *testing.T) {
	ctx := t.Context()
	process := inProgressProcess(t)
	workerID := kernel.NewUUID()
	resolvedID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteProcessCommand(process.ID(), nil, workerID, nil)

	orderRepo := new(MockOrderRepository)
	execRepo := new(MockExecutionRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetProcessForUpdate", mock.Anything, process.ID()).Return(process, nil).Once(),
		uow.On("ExecutionRepository").Return(execRepo).Once(),
		execRepo.On("FindActiveIDForWorker", mock.Anything, process.ID(), workerID).
			Return(resolvedID, nil).Once(),
		execRepo.On("Complete", mock.Anything, resolvedID, workerID, mock.AnythingOfType("time.Time")).
			Return(nil).Once(),
		execRepo.On("CountByProcess", mock.Anything, process.ID()).Return(2, 1, nil).Once(),
		orderRepo.On("UpdateProcessStatus", mock.Anything, process).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteProcessCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	// Another worker's session is still running.
	assert.Equal(t, order.ProcessStatusInProgress, process.Status())
	execRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteProcessCommandHandler_Handle_AlreadyCompletedExecution(t *testing.T) {
	ctx := t.Context()
	process := inProgressProcess(t)
	execID := kernel.NewUUID()
	workerID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteProcessCommand(process.ID(), &execID, workerID, nil)

	notFound := errs.NewObjectNotFoundError("executionID", execID)

	orderRepo := new(MockOrderRepository)
	execRepo := new(MockExecutionRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetProcessForUpdate", mock.Anything, process.ID()).Return(process, nil).Once(),
		uow.On("ExecutionRepository").Return(execRepo).Once(),
		execRepo.On("Complete", mock.Anything, execID, workerID, mock.AnythingOfType("time.Time")).
			Return(notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteProcessCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCompleteProcessCommandHandler_Handle_NoActiveExecution(t *testing.T) {
	ctx := t.Context()
	process := inProgressProcess(t)
	workerID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteProcessCommand(process.ID(), nil, workerID, nil)

	orderRepo := new(MockOrderRepository)
	execRepo := new(MockExecutionRepository)
	uow := new(MockLedgerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetProcessForUpdate", mock.Anything, process.ID()).Return(process, nil).Once(),
		uow.On("ExecutionRepository").Return(execRepo).Once(),
		execRepo.On("FindActiveIDForWorker", mock.Anything, process.ID(), workerID).
			Return(kernel.UUID{}, errs.NewObjectNotFoundError("execution", "active")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteProcessCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCompleteProcessCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockLedgerUoWFactory)
	h := commands.NewCompleteProcessCommandHandler(factory)
	err := h.Handle(ctx, commands.CompleteProcessCommand{})
	require.Error(t, err)
}
