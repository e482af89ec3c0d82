package commands

import (
	"context"
	"time"
)

// CompleteOrderCommandHandler handles the order completion gate.
//
// The order row is locked for the duration of the transaction so concurrent
// completion requests serialize. The gate itself lives on the aggregate:
// completion is rejected while any owned process is not completed. Since a
// completed process never regresses, a snapshot that passes the gate stays
// valid for the rest of the transaction.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
//
// Failure modes: object-not-found when the order does not exist,
// invalid-state when processes remain unfinished or the order is already
// completed.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Complete(time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
