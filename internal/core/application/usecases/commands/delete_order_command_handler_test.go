package commands_test

import (
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewDeleteOrderCommand(orderID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, orderID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewDeleteOrderCommand(orderID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, orderID).
			Return(errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, commands.DeleteOrderCommand{})
	require.Error(t, err)
}
