package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/subscriber"
	"storefront/internal/core/ports"
	"storefront/internal/core/services"
	"storefront/internal/pkg/errs"
)

// SendPromotionCommandHandler runs a manual promotional campaign for an
// explicit recipient list.
//
// Unlike the scheduled run, the manual trigger fails loudly: zero resolvable
// recipients or an empty catalog both return errs.ObjectNotFoundError so the
// caller learns why nothing went out. Per-recipient delivery faults are still
// only counted.
type SendPromotionCommandHandler struct {
	uowFactory SubscriberUoWFactory
	catalog    ports.ProductCatalog
	dispatcher *services.Dispatcher
	messages   *services.MessageFactory
	logger     *slog.Logger
}

// NewSendPromotionCommandHandler creates a handler for manual campaigns.
func NewSendPromotionCommandHandler(
	uowFactory SubscriberUoWFactory,
	catalog ports.ProductCatalog,
	dispatcher *services.Dispatcher,
	messages *services.MessageFactory,
	logger *slog.Logger,
) SendPromotionCommandHandler {
	return SendPromotionCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		dispatcher: dispatcher,
		messages:   messages,
		logger:     logger.With("component", "send_promotion_handler"),
	}
}

// Handle resolves the recipients, renders a personalized message for each and
// dispatches them one by one. Returns the delivery tally.
func (h *SendPromotionCommandHandler) Handle(
	ctx context.Context, cmd SendPromotionCommand,
) (services.DispatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.DispatchResult{}, err
	}

	recipients, err := h.resolveRecipients(ctx, cmd)
	if err != nil {
		return services.DispatchResult{}, err
	}
	if len(recipients) == 0 {
		return services.DispatchResult{}, errs.NewObjectNotFoundError(
			"subscriberIds", "no active subscribers among requested ids")
	}

	products, err := h.catalog.ListDiscounted(ctx)
	if err != nil {
		return services.DispatchResult{}, err
	}
	if len(products) == 0 {
		return services.DispatchResult{}, errs.NewObjectNotFoundError(
			"products", "no discounted products available")
	}

	msgs := make([]services.NotificationMessage, 0, len(recipients))
	for _, recipient := range recipients {
		msg, renderErr := h.messages.ManualPromotion(recipient, products)
		if renderErr != nil {
			h.logger.Warn("promotion rendering failed",
				"subscriberId", recipient.ID(), "error", renderErr)
			continue
		}
		msgs = append(msgs, msg)
	}

	result := h.dispatcher.SendToMany(ctx, msgs)
	h.logger.Info("manual promotion dispatched",
		"requested", len(cmd.SubscriberIDs()),
		"sent", result.Sent,
		"total", result.Total)

	return result, nil
}

func (h *SendPromotionCommandHandler) resolveRecipients(
	ctx context.Context, cmd SendPromotionCommand,
) ([]*subscriber.Subscriber, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	recipients, err := uow.SubscriberRepository().GetActiveByIDs(ctx, cmd.SubscriberIDs())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return recipients, nil
}
