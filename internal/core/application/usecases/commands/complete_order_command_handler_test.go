package commands_test

import (
	"testing"
	"time"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, statuses ...order.ProcessStatus) *order.Order {
	t.Helper()
	id := kernel.NewUUID()
	processes := make([]*order.Process, 0, len(statuses))
	for i, status := range statuses {
		process, err := order.RestoreProcess(kernel.NewUUID(), id, order.Printing, i+1, status)
		require.NoError(t, err)
		processes = append(processes, process)
	}
	aggregate, err := order.RestoreOrder(
		id, "1825", order.StatusInProgress, "", "", time.Now(), nil, processes)
	require.NoError(t, err)
	return aggregate
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.ProcessStatusCompleted, order.ProcessStatusCompleted)
	cmd, _ := commands.NewCompleteOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCompleted, aggregate.Status())
	require.NotNil(t, aggregate.CompletedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_GateRejects(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, order.ProcessStatusCompleted, order.ProcessStatusInProgress)
	cmd, _ := commands.NewCompleteOrderCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.StatusInProgress, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteOrderCommand(orderID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	h := commands.NewCompleteOrderCommandHandler(factory)
	err := h.Handle(ctx, commands.CompleteOrderCommand{})
	require.Error(t, err)
}
