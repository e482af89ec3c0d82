package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles administrative order removal.
// Deleting the order cascades to its processes, their executions, and the
// execution variables.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order removal.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command. Deleting a missing order returns an
// object-not-found error.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
