package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var row struct {
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
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&row).Error
	if err != nil {
		return OrderResponse{}, err
	}

	if row.ID == uuid.Nil {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	items, err := h.loadItems(ctx, row.ID)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
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
	}, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context, orderID uuid.UUID,
) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		if err = rows.Scan(
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
