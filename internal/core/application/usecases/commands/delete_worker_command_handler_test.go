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

func TestDeleteWorkerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	workerID := kernel.NewUUID()
	cmd, _ := commands.NewDeleteWorkerCommand(workerID)

	repo := new(MockWorkerRepository)
	uow := new(MockWorkerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkerRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, workerID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteWorkerCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteWorkerCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	workerID := kernel.NewUUID()
	cmd, _ := commands.NewDeleteWorkerCommand(workerID)

	repo := new(MockWorkerRepository)
	uow := new(MockWorkerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkerRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, workerID).
			Return(errs.NewObjectNotFoundError("workerID", workerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteWorkerCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestDeleteWorkerCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockWorkerUoWFactory)
	h := commands.NewDeleteWorkerCommandHandler(factory)
	err := h.Handle(ctx, commands.DeleteWorkerCommand{})
	require.Error(t, err)
}
