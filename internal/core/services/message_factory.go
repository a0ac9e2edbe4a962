package services

import (
	"fmt"

	"github.com/osteele/liquid"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/subscriber"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

const (
	subjectOrderConfirmation   = "Your order has been placed successfully!"
	subjectPaymentConfirmation = "Payment Confirmation"

	dailyPromotionPrefix  = "Today's Special Discounts"
	manualPromotionPrefix = "Special Offer"
)

// MessageFactory renders the notification bodies from Liquid templates.
// Rendering is pure: the factory holds parsed templates and no other state,
// so it is safe for concurrent use.
type MessageFactory struct {
	orderConfirmation   *liquid.Template
	orderStatusUpdate   *liquid.Template
	paymentConfirmation *liquid.Template
	promotion           *liquid.Template
}

// NewMessageFactory parses all templates up front so rendering cannot fail
// on template syntax at send time.
func NewMessageFactory() (*MessageFactory, error) {
	engine := liquid.NewEngine()
	engine.RegisterFilter("money", func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	})

	f := &MessageFactory{}
	for _, t := range []struct {
		name string
		src  string
		dst  **liquid.Template
	}{
		{"order_confirmation", orderConfirmationTemplate, &f.orderConfirmation},
		{"order_status_update", orderStatusUpdateTemplate, &f.orderStatusUpdate},
		{"payment_confirmation", paymentConfirmationTemplate, &f.paymentConfirmation},
		{"promotion", promotionTemplate, &f.promotion},
	} {
		tmpl, err := engine.ParseString(t.src)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", t.name, err)
		}
		*t.dst = tmpl
	}

	return f, nil
}

// OrderConfirmation renders the message sent right after an order is placed.
func (f *MessageFactory) OrderConfirmation(o *order.Order) (NotificationMessage, error) {
	if err := o.Validate(); err != nil {
		return NotificationMessage{}, err
	}

	items := make([]map[string]any, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, map[string]any{
			"product_name": item.ProductName(),
			"quantity":     item.Quantity(),
			"unit_price":   item.UnitPrice(),
			"subtotal":     item.Subtotal(),
		})
	}

	body, err := f.orderConfirmation.RenderString(map[string]any{
		"customer_name": o.CustomerName(),
		"order_id":      o.ID().String(),
		"order_date":    o.OrderedAt().Format("January 2, 2006"),
		"items":         items,
		"total_amount":  o.TotalAmount(),
		"street":        o.ShippingAddress().Street(),
		"city":          o.ShippingAddress().City(),
		"state":         o.ShippingAddress().State(),
		"postal_code":   o.ShippingAddress().PostalCode(),
		"country":       o.ShippingAddress().Country(),
	})
	if err != nil {
		return NotificationMessage{}, fmt.Errorf("render order confirmation: %w", err)
	}

	return NotificationMessage{
		To:      o.CustomerEmail().String(),
		Subject: subjectOrderConfirmation,
		Body:    body,
	}, nil
}

// OrderStatusUpdate renders the message sent when an order moves to a
// status that warrants a notification.
func (f *MessageFactory) OrderStatusUpdate(o *order.Order) (NotificationMessage, error) {
	if err := o.Validate(); err != nil {
		return NotificationMessage{}, err
	}

	body, err := f.orderStatusUpdate.RenderString(map[string]any{
		"customer_name":  o.CustomerName(),
		"order_id":       o.ID().String(),
		"order_date":     o.OrderedAt().Format("January 2, 2006"),
		"status":         o.Status().String(),
		"status_message": statusMessage(o.Status()),
	})
	if err != nil {
		return NotificationMessage{}, fmt.Errorf("render order status update: %w", err)
	}

	return NotificationMessage{
		To:      o.CustomerEmail().String(),
		Subject: fmt.Sprintf("Order Status Update: Your order is now %s", o.Status()),
		Body:    body,
	}, nil
}

// PaymentConfirmation renders the message sent when a payment lands.
func (f *MessageFactory) PaymentConfirmation(o *order.Order) (NotificationMessage, error) {
	if err := o.Validate(); err != nil {
		return NotificationMessage{}, err
	}

	body, err := f.paymentConfirmation.RenderString(map[string]any{
		"customer_name":  o.CustomerName(),
		"order_id":       o.ID().String(),
		"total_amount":   o.TotalAmount(),
		"payment_status": o.PaymentStatus().String(),
	})
	if err != nil {
		return NotificationMessage{}, fmt.Errorf("render payment confirmation: %w", err)
	}

	return NotificationMessage{
		To:      o.CustomerEmail().String(),
		Subject: subjectPaymentConfirmation,
		Body:    body,
	}, nil
}

// DailyPromotion renders the scheduled campaign message for one subscriber.
func (f *MessageFactory) DailyPromotion(
	s *subscriber.Subscriber,
	products []ports.DiscountedProduct,
) (NotificationMessage, error) {
	return f.renderPromotion(s, products, dailyPromotionPrefix)
}

// ManualPromotion renders the on-demand campaign message for one subscriber.
func (f *MessageFactory) ManualPromotion(
	s *subscriber.Subscriber,
	products []ports.DiscountedProduct,
) (NotificationMessage, error) {
	return f.renderPromotion(s, products, manualPromotionPrefix)
}

func (f *MessageFactory) renderPromotion(
	s *subscriber.Subscriber,
	products []ports.DiscountedProduct,
	subjectPrefix string,
) (NotificationMessage, error) {
	if err := s.Validate(); err != nil {
		return NotificationMessage{}, err
	}
	if len(products) == 0 {
		return NotificationMessage{}, errs.NewValueIsRequiredError("products")
	}

	bindings := make([]map[string]any, 0, len(products))
	for _, p := range products {
		bindings = append(bindings, map[string]any{
			"name":             p.Name,
			"original_price":   p.OriginalPrice,
			"discount_price":   p.DiscountPrice,
			"discount_percent": p.DiscountPercent(),
			"description":      p.Description,
		})
	}

	body, err := f.promotion.RenderString(map[string]any{
		"recipient_name": s.DisplayName(),
		"products":       bindings,
	})
	if err != nil {
		return NotificationMessage{}, fmt.Errorf("render promotion: %w", err)
	}

	// The headline discount is taken from the first product, matching the
	// catalog's ordering.
	return NotificationMessage{
		To:      s.Email().String(),
		Subject: fmt.Sprintf("%s - Up to %d%% OFF!", subjectPrefix, products[0].DiscountPercent()),
		Body:    body,
	}, nil
}

func statusMessage(s order.Status) string {
	switch s {
	case order.StatusProcessing:
		return "We are now preparing your order for shipment."
	case order.StatusShipped:
		return "Great news! Your order has been shipped and is on its way to you."
	case order.StatusDelivered:
		return "Your order has been delivered. We hope you enjoy your purchase!"
	default:
		return fmt.Sprintf("Your order status has been updated to: %s", s)
	}
}
