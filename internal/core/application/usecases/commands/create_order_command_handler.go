package commands

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the registration of new manufacturing
// orders.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create order command. A duplicate order number is
// rejected by the repository with a value-is-invalid error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderNumber(),
		cmd.Description(),
		cmd.PhotoURL(),
		cmd.ProcessNames(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
