package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand represents an administrative request to remove an order
// together with its processes, executions, and variables.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DeleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
