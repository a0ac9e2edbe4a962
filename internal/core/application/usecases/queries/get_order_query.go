// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries go straight to the database and return read models; they never load
// domain aggregates.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its item lines.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderResponse represents an order in the read model, statuses under their
// lowercase wire names.
type OrderResponse struct {
	ID            kernel.UUID
	CustomerEmail string
	CustomerName  string
	Items         []OrderItemResponse
	TotalAmount   float64
	Shipping      ShippingAddressResponse
	Status        string
	PaymentStatus string
	OrderedAt     time.Time
}

// OrderItemResponse represents a single order line in the read model.
type OrderItemResponse struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   float64
}

// ShippingAddressResponse represents the shipping destination in the read model.
type ShippingAddressResponse struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}
