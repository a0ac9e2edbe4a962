package queries

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// GetAllSubscribersQuery lists active subscribers, optionally narrowed to
// those opted into promotional mail.
type GetAllSubscribersQuery struct {
	wantsPromotions *bool
}

// NewGetAllSubscribersQuery creates a query for the active subscriber list.
// Pass nil to list every active subscriber regardless of opt-in.
func NewGetAllSubscribersQuery(wantsPromotions *bool) GetAllSubscribersQuery {
	return GetAllSubscribersQuery{wantsPromotions: wantsPromotions}
}

// WantsPromotions returns the opt-in filter, nil when unset.
func (q GetAllSubscribersQuery) WantsPromotions() *bool {
	return q.wantsPromotions
}

// SubscribersResponse lists subscribers in subscription order.
type SubscribersResponse struct {
	Subscribers []SubscriberResponse
}

// SubscriberResponse represents a subscriber in the read model.
type SubscriberResponse struct {
	ID              kernel.UUID
	Email           string
	FirstName       string
	LastName        string
	WantsPromotions bool
	SubscribedAt    time.Time
}
