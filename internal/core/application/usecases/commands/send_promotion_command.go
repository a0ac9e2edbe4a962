package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrSendPromotionCommandIsNotConstructed = errors.New(
	"SendPromotionCommand must be created via NewSendPromotionCommand constructor",
)

// SendPromotionCommand represents a manual campaign trigger for an explicit
// set of subscribers. An empty set is rejected up front; unknown or inactive
// subscribers are dropped silently during handling.
type SendPromotionCommand struct { //nolint:recvcheck //using for validation
	subscriberIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendPromotionCommand creates a manual campaign command.
// Requires at least one valid subscriber ID.
func NewSendPromotionCommand(subscriberIDs []kernel.UUID) (SendPromotionCommand, error) {
	cmd := SendPromotionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSubscriberIDs(subscriberIDs); err != nil {
		return SendPromotionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendPromotionCommand) Validate() error {
	return c.guard.Validate(ErrSendPromotionCommandIsNotConstructed)
}

// SubscriberIDs returns the requested campaign recipients.
func (c SendPromotionCommand) SubscriberIDs() []kernel.UUID {
	return c.subscriberIDs
}

func (c *SendPromotionCommand) setSubscriberIDs(subscriberIDs []kernel.UUID) error {
	if len(subscriberIDs) == 0 {
		return errs.NewValueIsRequiredError("subscriberIds")
	}
	for _, id := range subscriberIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.subscriberIDs = subscriberIDs
	return nil
}
