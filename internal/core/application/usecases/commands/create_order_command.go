package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
// Carries the already-validated value objects the Order aggregate needs;
// parsing raw input into them is the transport layer's job.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerEmail   kernel.Email
	customerName    string
	items           []order.Item
	shippingAddress order.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Requires a valid order ID and customer email, at least one item and a
// complete shipping address.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerEmail kernel.Email,
	customerName string,
	items []order.Item,
	shippingAddress order.Address,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerEmail(customerEmail),
		cmd.setItems(items),
		cmd.setShippingAddress(shippingAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerEmail returns the customer's email address.
func (c CreateOrderCommand) CustomerEmail() kernel.Email {
	return c.customerEmail
}

// CustomerName returns the customer's display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Items returns the ordered item lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// ShippingAddress returns the shipping destination.
func (c CreateOrderCommand) ShippingAddress() order.Address {
	return c.shippingAddress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerEmail(customerEmail kernel.Email) error {
	if err := customerEmail.Validate(); err != nil {
		return err
	}

	c.customerEmail = customerEmail
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress order.Address) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}

	c.shippingAddress = shippingAddress
	return nil
}
