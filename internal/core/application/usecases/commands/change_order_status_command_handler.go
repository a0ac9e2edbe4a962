package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/services"
)

// ChangeOrderStatusCommandHandler moves an order to a new fulfillment status.
//
// The persistence always happens; whether the customer hears about it depends
// on the target status (processing, shipped and delivered notify, the rest
// stay silent). The notification is best-effort and never fails the command.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher *services.Dispatcher
	messages   *services.MessageFactory
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher *services.Dispatcher,
	messages *services.MessageFactory,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		messages:   messages,
		logger:     logger.With("component", "change_order_status_handler"),
	}
}

// Handle processes the status change and returns the updated order.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if cmd.Status().TriggersNotification() {
		h.sendStatusUpdate(ctx, aggregate)
	}

	return aggregate, nil
}

func (h *ChangeOrderStatusCommandHandler) sendStatusUpdate(ctx context.Context, aggregate *order.Order) {
	msg, err := h.messages.OrderStatusUpdate(aggregate)
	if err != nil {
		h.logger.Warn("status update rendering failed",
			"orderId", aggregate.ID(), "error", err)
		return
	}

	h.dispatcher.SendOne(ctx, msg)
}
