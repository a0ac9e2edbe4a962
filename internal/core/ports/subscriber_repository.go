// Package ports defines the outbound contracts of the core: repositories,
// the notification channel and the product catalog. These interfaces keep
// the domain and application layers independent of infrastructure.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/subscriber"
)

// SubscriberRepository defines the persistence contract for subscriber aggregates.
type SubscriberRepository interface {
	// Add persists a new subscriber aggregate to storage.
	// Returns errs.ObjectAlreadyExistsError when the email is already taken;
	// the comparison is case-insensitive because emails are stored lowercased.
	Add(ctx context.Context, aggregate *subscriber.Subscriber) error

	// Update persists changes to an existing subscriber aggregate.
	Update(ctx context.Context, aggregate *subscriber.Subscriber) error

	// Get retrieves a subscriber aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*subscriber.Subscriber, error)

	// GetByEmail retrieves a subscriber by its unique email address.
	GetByEmail(ctx context.Context, email kernel.Email) (*subscriber.Subscriber, error)

	// GetAllActive retrieves all active subscribers. When wantsPromotions is
	// non-nil the result is additionally filtered by the promotional opt-in
	// flag; campaigns pass true so opted-out members are never contacted.
	GetAllActive(ctx context.Context, wantsPromotions *bool) ([]*subscriber.Subscriber, error)

	// GetActiveByIDs retrieves the active subscribers among the given
	// identifiers. Unknown and inactive ids are silently skipped, so the
	// result may be shorter than the input.
	GetActiveByIDs(ctx context.Context, ids []kernel.UUID) ([]*subscriber.Subscriber, error)
}
