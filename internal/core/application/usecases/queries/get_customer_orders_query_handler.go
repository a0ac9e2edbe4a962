package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's order history.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order history.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first; a customer with no
// orders yields an empty list, not an error.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) (CustomerOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerOrdersResponse{}, err
	}

	var rows []struct {
		ID                 uuid.UUID
		CustomerEmail      string
		CustomerName       string
		TotalAmount        float64
		ShippingStreet     string
		ShippingCity       string
		ShippingState      string
		ShippingPostalCode string
		ShippingCountry    string
		Status             string
		PaymentStatus      string
		OrderedAt          time.Time
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_email,
			customer_name,
			total_amount,
			shipping_street,
			shipping_city,
			shipping_state,
			shipping_postal_code,
			shipping_country,
			status,
			payment_status,
			ordered_at
		FROM orders
		WHERE customer_email = ?
		ORDER BY ordered_at DESC
	`, query.CustomerEmail().String()).Scan(&rows).Error
	if err != nil {
		return CustomerOrdersResponse{}, err
	}

	if len(rows) == 0 {
		return CustomerOrdersResponse{Orders: []OrderResponse{}}, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		orderIDs = append(orderIDs, row.ID)
	}

	itemsByOrder, err := h.loadItems(ctx, orderIDs)
	if err != nil {
		return CustomerOrdersResponse{}, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return CustomerOrdersResponse{}, err
		}

		items := itemsByOrder[row.ID]
		if items == nil {
			items = []OrderItemResponse{}
		}

		orders = append(orders, OrderResponse{
			ID:            id,
			CustomerEmail: row.CustomerEmail,
			CustomerName:  row.CustomerName,
			Items:         items,
			TotalAmount:   row.TotalAmount,
			Shipping: ShippingAddressResponse{
				Street:     row.ShippingStreet,
				City:       row.ShippingCity,
				State:      row.ShippingState,
				PostalCode: row.ShippingPostalCode,
				Country:    row.ShippingCountry,
			},
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			OrderedAt:     row.OrderedAt,
		})
	}

	return CustomerOrdersResponse{Orders: orders}, nil
}

// loadItems fetches the item lines for all orders in a single query.
func (h GetCustomerOrdersQueryHandler) loadItems(
	ctx context.Context, orderIDs []uuid.UUID,
) (map[uuid.UUID][]OrderItemResponse, error) {
	itemsByOrder := make(map[uuid.UUID][]OrderItemResponse)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			product_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item OrderItemResponse
		if err = rows.Scan(
			&orderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
		); err != nil {
			return nil, err
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return itemsByOrder, nil
}
