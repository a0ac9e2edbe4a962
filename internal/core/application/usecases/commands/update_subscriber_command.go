package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUpdateSubscriberCommandIsNotConstructed = errors.New(
	"UpdateSubscriberCommand must be created via NewUpdateSubscriberCommand constructor",
)

// UpdateSubscriberCommand represents a partial update of a subscriber.
// Nil fields are left untouched, so callers only send what changed.
type UpdateSubscriberCommand struct { //nolint:recvcheck //using for validation
	subscriberID    kernel.UUID
	firstName       *string
	lastName        *string
	isActive        *bool
	wantsPromotions *bool

	guard guard.ConstructorGuard
}

// NewUpdateSubscriberCommand creates a command to update a subscriber.
// Every field except the ID is optional.
func NewUpdateSubscriberCommand(
	subscriberID kernel.UUID,
	firstName, lastName *string,
	isActive, wantsPromotions *bool,
) (UpdateSubscriberCommand, error) {
	cmd := UpdateSubscriberCommand{
		firstName:       firstName,
		lastName:        lastName,
		isActive:        isActive,
		wantsPromotions: wantsPromotions,
		guard:           guard.NewConstructorGuard(),
	}

	if err := cmd.setSubscriberID(subscriberID); err != nil {
		return UpdateSubscriberCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSubscriberCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSubscriberCommandIsNotConstructed)
}

// SubscriberID returns the identifier of the subscriber to update.
func (c UpdateSubscriberCommand) SubscriberID() kernel.UUID {
	return c.subscriberID
}

// FirstName returns the new first name, or nil when unchanged.
func (c UpdateSubscriberCommand) FirstName() *string {
	return c.firstName
}

// LastName returns the new last name, or nil when unchanged.
func (c UpdateSubscriberCommand) LastName() *string {
	return c.lastName
}

// IsActive returns the new active flag, or nil when unchanged.
func (c UpdateSubscriberCommand) IsActive() *bool {
	return c.isActive
}

// WantsPromotions returns the new opt-in flag, or nil when unchanged.
func (c UpdateSubscriberCommand) WantsPromotions() *bool {
	return c.wantsPromotions
}

func (c *UpdateSubscriberCommand) setSubscriberID(subscriberID kernel.UUID) error {
	if err := subscriberID.Validate(); err != nil {
		return err
	}

	c.subscriberID = subscriberID
	return nil
}
