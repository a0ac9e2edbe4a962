package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/subscriber"
)

// CreateOrderRequest is the payload for POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerEmail   string                 `json:"customerEmail"`
	CustomerName    string                 `json:"customerName"`
	Items           []OrderItemRequest     `json:"items"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress"`
}

// OrderItemRequest is one order line in CreateOrderRequest.
type OrderItemRequest struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// ShippingAddressRequest is the destination in CreateOrderRequest.
type ShippingAddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ChangeOrderStatusRequest is the payload for PATCH /api/v1/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// ChangePaymentStatusRequest is the payload for PATCH /api/v1/orders/:id/payment.
type ChangePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// CreateSubscriberRequest is the payload for POST /api/v1/subscribers.
type CreateSubscriberRequest struct {
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	WantsPromotions bool   `json:"wantsPromotions"`
}

// UpdateSubscriberRequest is the payload for PUT /api/v1/subscribers/:id.
// Omitted fields keep their current values.
type UpdateSubscriberRequest struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	IsActive        *bool   `json:"isActive"`
	WantsPromotions *bool   `json:"wantsPromotions"`
}

// SendPromotionRequest is the payload for POST /api/v1/promotions/dispatch.
type SendPromotionRequest struct {
	SubscriberIDs []string `json:"subscriberIds"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID              string                  `json:"id"`
	CustomerEmail   string                  `json:"customerEmail"`
	CustomerName    string                  `json:"customerName"`
	Items           []OrderItemResponse     `json:"items"`
	TotalAmount     float64                 `json:"totalAmount"`
	ShippingAddress ShippingAddressResponse `json:"shippingAddress"`
	Status          string                  `json:"status"`
	PaymentStatus   string                  `json:"paymentStatus"`
	OrderedAt       time.Time               `json:"orderedAt"`
}

// OrderItemResponse is one order line in OrderResponse.
type OrderItemResponse struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// ShippingAddressResponse is the destination in OrderResponse.
type ShippingAddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// SubscriberResponse represents a subscriber in API responses.
type SubscriberResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	WantsPromotions bool      `json:"wantsPromotions"`
	SubscribedAt    time.Time `json:"subscribedAt"`
}

// DispatchResponse reports the outcome of a promotion dispatch.
type DispatchResponse struct {
	Total  int `json:"total"`
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// Error is the envelope for all error responses.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func orderFromDomain(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	address := o.ShippingAddress()

	return OrderResponse{
		ID:            o.ID().String(),
		CustomerEmail: o.CustomerEmail().String(),
		CustomerName:  o.CustomerName(),
		Items:         items,
		TotalAmount:   o.TotalAmount(),
		ShippingAddress: ShippingAddressResponse{
			Street:     address.Street(),
			City:       address.City(),
			State:      address.State(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
		},
		Status:        o.Status().String(),
		PaymentStatus: o.PaymentStatus().String(),
		OrderedAt:     o.OrderedAt(),
	}
}

func orderFromReadModel(o queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return OrderResponse{
		ID:            o.ID.String(),
		CustomerEmail: o.CustomerEmail,
		CustomerName:  o.CustomerName,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		ShippingAddress: ShippingAddressResponse{
			Street:     o.Shipping.Street,
			City:       o.Shipping.City,
			State:      o.Shipping.State,
			PostalCode: o.Shipping.PostalCode,
			Country:    o.Shipping.Country,
		},
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		OrderedAt:     o.OrderedAt,
	}
}

func subscriberFromDomain(s *subscriber.Subscriber) SubscriberResponse {
	return SubscriberResponse{
		ID:              s.ID().String(),
		Email:           s.Email().String(),
		FirstName:       s.FirstName(),
		LastName:        s.LastName(),
		WantsPromotions: s.WantsPromotions(),
		SubscribedAt:    s.SubscribedAt(),
	}
}

func subscriberFromReadModel(s queries.SubscriberResponse) SubscriberResponse {
	return SubscriberResponse{
		ID:              s.ID.String(),
		Email:           s.Email,
		FirstName:       s.FirstName,
		LastName:        s.LastName,
		WantsPromotions: s.WantsPromotions,
		SubscribedAt:    s.SubscribedAt,
	}
}
