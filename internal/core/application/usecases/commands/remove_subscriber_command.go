package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRemoveSubscriberCommandIsNotConstructed = errors.New(
	"RemoveSubscriberCommand must be created via NewRemoveSubscriberCommand constructor",
)

// RemoveSubscriberCommand represents a request to unsubscribe a member.
// Removal is a soft deactivation; the record stays.
type RemoveSubscriberCommand struct { //nolint:recvcheck //using for validation
	subscriberID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveSubscriberCommand creates a command to unsubscribe a member.
func NewRemoveSubscriberCommand(subscriberID kernel.UUID) (RemoveSubscriberCommand, error) {
	cmd := RemoveSubscriberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSubscriberID(subscriberID); err != nil {
		return RemoveSubscriberCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveSubscriberCommand) Validate() error {
	return c.guard.Validate(ErrRemoveSubscriberCommandIsNotConstructed)
}

// SubscriberID returns the identifier of the subscriber to deactivate.
func (c RemoveSubscriberCommand) SubscriberID() kernel.UUID {
	return c.subscriberID
}

func (c *RemoveSubscriberCommand) setSubscriberID(subscriberID kernel.UUID) error {
	if err := subscriberID.Validate(); err != nil {
		return err
	}

	c.subscriberID = subscriberID
	return nil
}
