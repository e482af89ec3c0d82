package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new manufacturing
// order with its workflow of production processes.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	orderNumber  string
	description  string
	photoURL     string
	processNames []order.ProcessName

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register an order.
// Description and photoURL are optional; process names must come from the
// production vocabulary and the list may be empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	description string,
	photoURL string,
	processNames []order.ProcessName,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		description: description,
		photoURL:    photoURL,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setProcessNames(processNames),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identity assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the unique human-facing order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Description returns the optional free-text description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// PhotoURL returns the optional photo reference.
func (c CreateOrderCommand) PhotoURL() string {
	return c.photoURL
}

// ProcessNames returns the workflow steps in sequence order.
func (c CreateOrderCommand) ProcessNames() []order.ProcessName {
	return c.processNames
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setProcessNames(processNames []order.ProcessName) error {
	for _, name := range processNames {
		if err := name.Validate(); err != nil {
			return err
		}
	}
	c.processNames = processNames
	return nil
}
