package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/services"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// A fresh order always starts as pending with a pending payment; the total
// is derived from the item lines inside the aggregate.
//
// After a successful commit the handler sends the order confirmation email
// best-effort: a delivery failure is logged and never fails the command.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher *services.Dispatcher
	messages   *services.MessageFactory
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher *services.Dispatcher,
	messages *services.MessageFactory,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		messages:   messages,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle processes the order placement command and returns the created order.
// Persistence failure aborts the command and no notification is attempted.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerEmail(),
		cmd.CustomerName(),
		cmd.Items(),
		cmd.ShippingAddress(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.sendConfirmation(ctx, aggregate)

	return aggregate, nil
}

func (h *CreateOrderCommandHandler) sendConfirmation(ctx context.Context, aggregate *order.Order) {
	msg, err := h.messages.OrderConfirmation(aggregate)
	if err != nil {
		h.logger.Warn("order confirmation rendering failed",
			"orderId", aggregate.ID(), "error", err)
		return
	}

	h.dispatcher.SendOne(ctx, msg)
}
