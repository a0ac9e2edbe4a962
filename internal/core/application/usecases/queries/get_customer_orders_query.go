package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves every order placed by a customer.
type GetCustomerOrdersQuery struct {
	customerEmail kernel.Email

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
func NewGetCustomerOrdersQuery(customerEmail kernel.Email) (GetCustomerOrdersQuery, error) {
	if err := customerEmail.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerEmail: customerEmail,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerEmail returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerEmail() kernel.Email {
	return q.customerEmail
}

// CustomerOrdersResponse lists a customer's orders, newest first.
type CustomerOrdersResponse struct {
	Orders []OrderResponse
}
