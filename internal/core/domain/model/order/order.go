package order

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root tracking a customer purchase through its
// lifecycle from creation to delivery (or cancellation), together with the
// independent payment dimension.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and customer email
//   - Must contain at least one valid item
//   - The total amount always equals the sum of quantity x unit price over the items
//   - Status and payment status are always members of their enumerated sets
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated methods.
type Order struct {
	id              kernel.UUID
	customerEmail   kernel.Email
	customerName    string
	items           []Item
	totalAmount     float64
	shippingAddress Address
	status          Status
	paymentStatus   PaymentStatus
	orderedAt       time.Time

	isConstructed bool
}

// NewOrder creates a new Order with validation. A fresh order always starts
// with status=pending and paymentStatus=pending.
//
// The total amount is computed from the items; callers cannot supply their
// own figure, so the aggregate can never disagree with its item lines.
func NewOrder(
	id kernel.UUID,
	customerEmail kernel.Email,
	customerName string,
	items []Item,
	shippingAddress Address,
	orderedAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        StatusPending,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerEmail(customerEmail),
		order.setCustomerName(customerName),
		order.setItems(items),
		order.setShippingAddress(shippingAddress),
		order.setOrderedAt(orderedAt),
	); err != nil {
		return nil, err
	}

	order.totalAmount = sumItems(order.items)
	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder it accepts the stored status, payment status and total
// amount, validating enum membership but performing no recomputation, so a
// stored aggregate round-trips unchanged.
func RestoreOrder(
	id kernel.UUID,
	customerEmail kernel.Email,
	customerName string,
	items []Item,
	totalAmount float64,
	shippingAddress Address,
	status Status,
	paymentStatus PaymentStatus,
	orderedAt time.Time,
) (*Order, error) {
	order := &Order{
		totalAmount:   totalAmount,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerEmail(customerEmail),
		order.setCustomerName(customerName),
		order.setItems(items),
		order.setShippingAddress(shippingAddress),
		order.setOrderedAt(orderedAt),
		order.setStatus(status),
		order.setPaymentStatus(paymentStatus),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value or hand-built instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerEmail returns the email address notifications are sent to.
func (o *Order) CustomerEmail() kernel.Email {
	return o.customerEmail
}

// CustomerName returns the customer display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Items returns a copy of the ordered item lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// ShippingAddress returns the shipping destination.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// OrderedAt returns the creation timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// ChangeStatus replaces the fulfillment status.
//
// The new status must be a member of the enumerated set; beyond that any
// transition is accepted, including moving a delivered order back to pending.
// Whether the change warrants a customer notification is the caller's
// concern (see Status.TriggersNotification).
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ChangePaymentStatus replaces the payment status.
// Same contract as ChangeStatus over the payment enumeration. The
// fulfillment status is never touched: a canceled order may end up paid.
func (o *Order) ChangePaymentStatus(newPaymentStatus PaymentStatus) error {
	if err := newPaymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = newPaymentStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerEmail(customerEmail kernel.Email) error {
	if err := customerEmail.Validate(); err != nil {
		return err
	}
	o.customerEmail = customerEmail
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setShippingAddress(shippingAddress Address) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}
	o.shippingAddress = shippingAddress
	return nil
}

func (o *Order) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("orderedAt")
	}
	o.orderedAt = orderedAt
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}

func sumItems(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
