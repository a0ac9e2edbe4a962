// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Item lines live in their own table and are loaded eagerly with the order.
// Statuses are stored under their lowercase wire names so the rows read the
// same as the API payloads.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerEmail   string     `gorm:"index"`
	CustomerName    string     ``
	Items           []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount     float64    ``
	ShippingAddress AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	Status          string     `gorm:"index"`
	PaymentStatus   string     ``
	OrderedAt       time.Time  `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line in the order_items table.
type ItemDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   string    ``
	ProductName string    ``
	Quantity    int       ``
	UnitPrice   float64   ``
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO represents the embedded shipping destination within the order table.
type AddressDTO struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	address := aggregate.ShippingAddress()

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerEmail: aggregate.CustomerEmail().String(),
		CustomerName:  aggregate.CustomerName(),
		Items:         items,
		TotalAmount:   aggregate.TotalAmount(),
		ShippingAddress: AddressDTO{
			Street:     address.Street(),
			City:       address.City(),
			State:      address.State(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
		},
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		OrderedAt:     aggregate.OrderedAt(),
	}
}

// toDomain converts a database DTO back to an order domain aggregate.
// Reconstructs the complete aggregate including both statuses using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(
			itemDTO.ProductID, itemDTO.ProductName, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		dto.ShippingAddress.Street,
		dto.ShippingAddress.City,
		dto.ShippingAddress.State,
		dto.ShippingAddress.PostalCode,
		dto.ShippingAddress.Country,
	)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, email, dto.CustomerName, items, dto.TotalAmount,
		address, status, paymentStatus, dto.OrderedAt)
}
