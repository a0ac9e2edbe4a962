package subscriber

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrSubscriberIsNotConstructed is returned when a Subscriber instance was
	// not created through the NewSubscriber or RestoreSubscriber factory functions.
	ErrSubscriberIsNotConstructed = errors.New(
		"Subscriber must be created via NewSubscriber constructor")
)

// fallbackDisplayName is used for personalization when a subscriber never
// provided a first name.
const fallbackDisplayName = "Valued Customer"

// Subscriber is the aggregate root for a mailing-list member.
//
// Invariants:
//   - Must have a valid unique identifier and email
//   - isActive=false always comes with an unsubscribed timestamp
//   - Can only be created through NewSubscriber or RestoreSubscriber
//
// The email is the subscriber's unique key; uniqueness across the collection
// is the repository's responsibility because the aggregate cannot see its
// siblings.
type Subscriber struct {
	id              kernel.UUID
	email           kernel.Email
	firstName       string
	lastName        string
	isActive        bool
	wantsPromotions bool
	subscribedAt    time.Time
	unsubscribedAt  *time.Time

	isConstructed bool
}

// NewSubscriber creates a new active Subscriber.
// First and last name are optional; the promotional opt-in is set as given.
func NewSubscriber(
	id kernel.UUID,
	email kernel.Email,
	firstName, lastName string,
	wantsPromotions bool,
	subscribedAt time.Time,
) (*Subscriber, error) {
	s := &Subscriber{
		firstName:       strings.TrimSpace(firstName),
		lastName:        strings.TrimSpace(lastName),
		isActive:        true,
		wantsPromotions: wantsPromotions,
		isConstructed:   true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setEmail(email),
		s.setSubscribedAt(subscribedAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSubscriber reconstructs a Subscriber from persisted state.
func RestoreSubscriber(
	id kernel.UUID,
	email kernel.Email,
	firstName, lastName string,
	isActive bool,
	wantsPromotions bool,
	subscribedAt time.Time,
	unsubscribedAt *time.Time,
) (*Subscriber, error) {
	s := &Subscriber{
		firstName:       firstName,
		lastName:        lastName,
		isActive:        isActive,
		wantsPromotions: wantsPromotions,
		unsubscribedAt:  unsubscribedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setEmail(email),
		s.setSubscribedAt(subscribedAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Subscriber instance was properly constructed.
func (s *Subscriber) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubscriberIsNotConstructed
	}
	return nil
}

// IsEqual compares two subscribers by their unique identifiers.
func (s *Subscriber) IsEqual(other *Subscriber) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the subscriber's unique identifier.
func (s *Subscriber) ID() kernel.UUID {
	return s.id
}

// Email returns the subscriber's unique email address.
func (s *Subscriber) Email() kernel.Email {
	return s.email
}

// FirstName returns the optional first name ("" if not provided).
func (s *Subscriber) FirstName() string {
	return s.firstName
}

// LastName returns the optional last name ("" if not provided).
func (s *Subscriber) LastName() string {
	return s.lastName
}

// IsActive reports whether the subscriber currently receives mail.
func (s *Subscriber) IsActive() bool {
	return s.isActive
}

// WantsPromotions reports the promotional opt-in flag.
func (s *Subscriber) WantsPromotions() bool {
	return s.wantsPromotions
}

// SubscribedAt returns the subscription timestamp.
func (s *Subscriber) SubscribedAt() time.Time {
	return s.subscribedAt
}

// UnsubscribedAt returns the deactivation timestamp, or nil while active.
func (s *Subscriber) UnsubscribedAt() *time.Time {
	return s.unsubscribedAt
}

// DisplayName returns the name used for message personalization:
// the first name when present, a generic salutation otherwise.
func (s *Subscriber) DisplayName() string {
	if s.firstName == "" {
		return fallbackDisplayName
	}
	return s.firstName
}

// Rename replaces the optional name components.
func (s *Subscriber) Rename(firstName, lastName string) {
	s.firstName = strings.TrimSpace(firstName)
	s.lastName = strings.TrimSpace(lastName)
}

// SetPromotionalOptIn updates the promotional opt-in flag.
func (s *Subscriber) SetPromotionalOptIn(wantsPromotions bool) {
	s.wantsPromotions = wantsPromotions
}

// Activate re-enables a previously deactivated subscriber and clears the
// unsubscribed timestamp. Activating an active subscriber is a no-op.
func (s *Subscriber) Activate() {
	s.isActive = true
	s.unsubscribedAt = nil
}

// Deactivate performs the soft delete: the subscriber stops receiving mail
// and the moment is recorded. The record itself is never removed.
// Deactivating an already inactive subscriber keeps the original timestamp.
func (s *Subscriber) Deactivate(at time.Time) {
	if !s.isActive {
		return
	}
	s.isActive = false
	s.unsubscribedAt = &at
}

func (s *Subscriber) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Subscriber) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	s.email = email
	return nil
}

func (s *Subscriber) setSubscribedAt(subscribedAt time.Time) error {
	if subscribedAt.IsZero() {
		return errs.NewValueIsRequiredError("subscribedAt")
	}
	s.subscribedAt = subscribedAt
	return nil
}
