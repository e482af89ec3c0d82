package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
)

// CompleteOrderCommand represents an explicit request to close an order
// whose production processes are all finished.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order.
func NewCompleteOrderCommand(orderID kernel.UUID) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
