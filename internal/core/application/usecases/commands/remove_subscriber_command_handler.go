package commands

import (
	"context"
	"time"
)

// RemoveSubscriberCommandHandler deactivates a subscriber.
// The record is kept with its unsubscribe timestamp; deactivating an already
// inactive subscriber is a harmless no-op.
type RemoveSubscriberCommandHandler struct {
	uowFactory SubscriberUoWFactory
}

// NewRemoveSubscriberCommandHandler creates a handler for unsubscribe requests.
func NewRemoveSubscriberCommandHandler(uowFactory SubscriberUoWFactory) RemoveSubscriberCommandHandler {
	return RemoveSubscriberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unsubscribe request.
// Returns errs.ObjectNotFoundError when the subscriber does not exist.
func (h *RemoveSubscriberCommandHandler) Handle(ctx context.Context, cmd RemoveSubscriberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	subscriberRepo := uow.SubscriberRepository()
	aggregate, err := subscriberRepo.Get(ctx, cmd.SubscriberID())
	if err != nil {
		return err
	}

	aggregate.Deactivate(time.Now())

	if err = subscriberRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
