package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCreateSubscriberCommandIsNotConstructed = errors.New(
	"CreateSubscriberCommand must be created via NewCreateSubscriberCommand constructor",
)

// CreateSubscriberCommand represents a request to add a mailing-list member.
// Names are optional; the email must be valid and not already subscribed
// (uniqueness is checked by the repository at persist time).
type CreateSubscriberCommand struct { //nolint:recvcheck //using for validation
	subscriberID    kernel.UUID
	email           kernel.Email
	firstName       string
	lastName        string
	wantsPromotions bool

	guard guard.ConstructorGuard
}

// NewCreateSubscriberCommand creates a command to register a new subscriber.
func NewCreateSubscriberCommand(
	subscriberID kernel.UUID,
	email kernel.Email,
	firstName, lastName string,
	wantsPromotions bool,
) (CreateSubscriberCommand, error) {
	cmd := CreateSubscriberCommand{
		firstName:       firstName,
		lastName:        lastName,
		wantsPromotions: wantsPromotions,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSubscriberID(subscriberID),
		cmd.setEmail(email),
	); err != nil {
		return CreateSubscriberCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSubscriberCommand) Validate() error {
	return c.guard.Validate(ErrCreateSubscriberCommandIsNotConstructed)
}

// SubscriberID returns the unique identifier for the subscriber.
func (c CreateSubscriberCommand) SubscriberID() kernel.UUID {
	return c.subscriberID
}

// Email returns the subscriber's email address.
func (c CreateSubscriberCommand) Email() kernel.Email {
	return c.email
}

// FirstName returns the optional first name.
func (c CreateSubscriberCommand) FirstName() string {
	return c.firstName
}

// LastName returns the optional last name.
func (c CreateSubscriberCommand) LastName() string {
	return c.lastName
}

// WantsPromotions returns the promotional opt-in flag.
func (c CreateSubscriberCommand) WantsPromotions() bool {
	return c.wantsPromotions
}

func (c *CreateSubscriberCommand) setSubscriberID(subscriberID kernel.UUID) error {
	if err := subscriberID.Validate(); err != nil {
		return err
	}

	c.subscriberID = subscriberID
	return nil
}

func (c *CreateSubscriberCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}
