package commands

import (
	"context"
)

// DeleteWorkerCommandHandler handles worker account removal. Rows in the
// execution ledger that reference the worker keep their history with the
// reference set to null.
type DeleteWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewDeleteWorkerCommandHandler creates a handler for worker removal.
func NewDeleteWorkerCommandHandler(uowFactory WorkerUoWFactory) DeleteWorkerCommandHandler {
	return DeleteWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command. Deleting a missing worker returns an
// object-not-found error.
func (h *DeleteWorkerCommandHandler) Handle(ctx context.Context, cmd DeleteWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.WorkerRepository().Delete(ctx, cmd.WorkerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
