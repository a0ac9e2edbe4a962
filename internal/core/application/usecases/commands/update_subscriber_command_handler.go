package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/subscriber"
)

// UpdateSubscriberCommandHandler applies a partial update to a subscriber.
// Flipping isActive to false behaves exactly like RemoveSubscriberCommand;
// flipping it back to true clears the unsubscribed timestamp.
type UpdateSubscriberCommandHandler struct {
	uowFactory SubscriberUoWFactory
}

// NewUpdateSubscriberCommandHandler creates a handler for subscriber updates.
func NewUpdateSubscriberCommandHandler(uowFactory SubscriberUoWFactory) UpdateSubscriberCommandHandler {
	return UpdateSubscriberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update and returns the updated subscriber.
// Returns errs.ObjectNotFoundError when the subscriber does not exist.
func (h *UpdateSubscriberCommandHandler) Handle(
	ctx context.Context, cmd UpdateSubscriberCommand,
) (*subscriber.Subscriber, error) {
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

	subscriberRepo := uow.SubscriberRepository()
	aggregate, err := subscriberRepo.Get(ctx, cmd.SubscriberID())
	if err != nil {
		return nil, err
	}

	applyUpdate(aggregate, cmd)

	if err = subscriberRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func applyUpdate(aggregate *subscriber.Subscriber, cmd UpdateSubscriberCommand) {
	if cmd.FirstName() != nil || cmd.LastName() != nil {
		firstName := aggregate.FirstName()
		if cmd.FirstName() != nil {
			firstName = *cmd.FirstName()
		}
		lastName := aggregate.LastName()
		if cmd.LastName() != nil {
			lastName = *cmd.LastName()
		}
		aggregate.Rename(firstName, lastName)
	}

	if cmd.WantsPromotions() != nil {
		aggregate.SetPromotionalOptIn(*cmd.WantsPromotions())
	}

	if cmd.IsActive() != nil {
		if *cmd.IsActive() {
			aggregate.Activate()
		} else {
			aggregate.Deactivate(time.Now())
		}
	}
}
