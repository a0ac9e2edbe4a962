package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/subscriber"
)

// CreateSubscriberCommandHandler registers a new mailing-list member.
// A duplicate email (case-insensitive) surfaces as
// errs.ObjectAlreadyExistsError from the repository.
type CreateSubscriberCommandHandler struct {
	uowFactory SubscriberUoWFactory
}

// NewCreateSubscriberCommandHandler creates a handler for subscriber registration.
func NewCreateSubscriberCommandHandler(uowFactory SubscriberUoWFactory) CreateSubscriberCommandHandler {
	return CreateSubscriberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration and returns the created subscriber.
func (h *CreateSubscriberCommandHandler) Handle(
	ctx context.Context, cmd CreateSubscriberCommand,
) (*subscriber.Subscriber, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := subscriber.NewSubscriber(
		cmd.SubscriberID(),
		cmd.Email(),
		cmd.FirstName(),
		cmd.LastName(),
		cmd.WantsPromotions(),
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

	if err = uow.SubscriberRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
