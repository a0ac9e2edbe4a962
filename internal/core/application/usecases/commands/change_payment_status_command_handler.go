package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/services"
)

// ChangePaymentStatusCommandHandler moves an order's payment to a new status.
// Only a transition to paid triggers the payment confirmation email; the
// send is best-effort and never fails the command.
type ChangePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher *services.Dispatcher
	messages   *services.MessageFactory
	logger     *slog.Logger
}

// NewChangePaymentStatusCommandHandler creates a handler for payment status changes.
func NewChangePaymentStatusCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher *services.Dispatcher,
	messages *services.MessageFactory,
	logger *slog.Logger,
) ChangePaymentStatusCommandHandler {
	return ChangePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		messages:   messages,
		logger:     logger.With("component", "change_payment_status_handler"),
	}
}

// Handle processes the payment status change and returns the updated order.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h *ChangePaymentStatusCommandHandler) Handle(
	ctx context.Context, cmd ChangePaymentStatusCommand,
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

	if err = aggregate.ChangePaymentStatus(cmd.PaymentStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if cmd.PaymentStatus().TriggersNotification() {
		h.sendPaymentConfirmation(ctx, aggregate)
	}

	return aggregate, nil
}

func (h *ChangePaymentStatusCommandHandler) sendPaymentConfirmation(
	ctx context.Context, aggregate *order.Order,
) {
	msg, err := h.messages.PaymentConfirmation(aggregate)
	if err != nil {
		h.logger.Warn("payment confirmation rendering failed",
			"orderId", aggregate.ID(), "error", err)
		return
	}

	h.dispatcher.SendOne(ctx, msg)
}
