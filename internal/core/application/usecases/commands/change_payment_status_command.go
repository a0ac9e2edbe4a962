package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrChangePaymentStatusCommandIsNotConstructed = errors.New(
	"ChangePaymentStatusCommand must be created via NewChangePaymentStatusCommand constructor",
)

// ChangePaymentStatusCommand represents a request to move an order's payment
// to a new status. Parsing happens at construction, same as
// ChangeOrderStatusCommand.
type ChangePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentStatus order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewChangePaymentStatusCommand creates a command to change an order's
// payment status (pending, paid, failed, refunded).
func NewChangePaymentStatusCommand(
	orderID kernel.UUID, paymentStatus string,
) (ChangePaymentStatusCommand, error) {
	cmd := ChangePaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	parsed, err := order.PaymentStatusFromString(paymentStatus)
	if err != nil {
		return ChangePaymentStatusCommand{}, err
	}
	cmd.paymentStatus = parsed

	if err := cmd.setOrderID(orderID); err != nil {
		return ChangePaymentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePaymentStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c ChangePaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentStatus returns the parsed target payment status.
func (c ChangePaymentStatusCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

func (c *ChangePaymentStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
