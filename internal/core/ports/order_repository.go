package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all of its item lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomerEmail retrieves all orders placed under the given email,
	// newest first.
	GetByCustomerEmail(ctx context.Context, email kernel.Email) ([]*order.Order, error)
}
