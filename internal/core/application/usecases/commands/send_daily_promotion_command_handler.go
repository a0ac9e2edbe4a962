package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/subscriber"
	"storefront/internal/core/ports"
	"storefront/internal/core/services"
)

// SendDailyPromotionCommandHandler runs the scheduled promotional campaign.
//
// Recipients are the active subscribers with the promotional opt-in set. An
// empty catalog is not an error on this path: the run logs the skip and ends
// with zero sends. Per-recipient delivery faults are counted, never raised.
type SendDailyPromotionCommandHandler struct {
	uowFactory SubscriberUoWFactory
	catalog    ports.ProductCatalog
	dispatcher *services.Dispatcher
	messages   *services.MessageFactory
	logger     *slog.Logger
}

// NewSendDailyPromotionCommandHandler creates a handler for the scheduled campaign.
func NewSendDailyPromotionCommandHandler(
	uowFactory SubscriberUoWFactory,
	catalog ports.ProductCatalog,
	dispatcher *services.Dispatcher,
	messages *services.MessageFactory,
	logger *slog.Logger,
) SendDailyPromotionCommandHandler {
	return SendDailyPromotionCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		dispatcher: dispatcher,
		messages:   messages,
		logger:     logger.With("component", "send_daily_promotion_handler"),
	}
}

// Handle runs one campaign tick end to end.
// Only repository and catalog failures propagate; everything downstream of a
// successful read is best-effort.
func (h *SendDailyPromotionCommandHandler) Handle(ctx context.Context) error {
	recipients, err := h.loadRecipients(ctx)
	if err != nil {
		return err
	}

	products, err := h.catalog.ListDiscounted(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		h.logger.Info("no discounted products available today, skipping promotion")
		return nil
	}

	msgs := make([]services.NotificationMessage, 0, len(recipients))
	for _, recipient := range recipients {
		msg, renderErr := h.messages.DailyPromotion(recipient, products)
		if renderErr != nil {
			h.logger.Warn("promotion rendering failed",
				"subscriberId", recipient.ID(), "error", renderErr)
			continue
		}
		msgs = append(msgs, msg)
	}

	result := h.dispatcher.SendToMany(ctx, msgs)
	h.logger.Info("daily promotion dispatched",
		"sent", result.Sent,
		"total", len(recipients))

	return nil
}

func (h *SendDailyPromotionCommandHandler) loadRecipients(
	ctx context.Context,
) ([]*subscriber.Subscriber, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	wantsPromotions := true
	recipients, err := uow.SubscriberRepository().GetAllActive(ctx, &wantsPromotions)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return recipients, nil
}
