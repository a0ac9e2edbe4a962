// Package subscriberrepo provides data transfer objects and mapping functions
// for subscriber persistence. Email uniqueness lives here as a database
// constraint; the aggregate itself cannot enforce it.
package subscriberrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/subscriber"

	"github.com/google/uuid"
)

// SubscriberDTO represents the database structure for persisting subscribers.
// Emails are stored lowercased (the Email value object normalizes them), so
// the unique index is effectively case-insensitive.
type SubscriberDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email           string     `gorm:"uniqueIndex"`
	FirstName       string     ``
	LastName        string     ``
	IsActive        bool       `gorm:"index"`
	WantsPromotions bool       ``
	SubscribedAt    time.Time  ``
	UnsubscribedAt  *time.Time ``
}

// TableName specifies the database table name for subscriber entities.
func (SubscriberDTO) TableName() string {
	return "subscribers"
}

// fromDomain converts a subscriber domain aggregate to its database representation.
func fromDomain(aggregate *subscriber.Subscriber) SubscriberDTO {
	return SubscriberDTO{
		ID:              aggregate.ID().Bytes(),
		Email:           aggregate.Email().String(),
		FirstName:       aggregate.FirstName(),
		LastName:        aggregate.LastName(),
		IsActive:        aggregate.IsActive(),
		WantsPromotions: aggregate.WantsPromotions(),
		SubscribedAt:    aggregate.SubscribedAt(),
		UnsubscribedAt:  aggregate.UnsubscribedAt(),
	}
}

// toDomain converts a database DTO back to a subscriber domain aggregate.
func toDomain(dto SubscriberDTO) (*subscriber.Subscriber, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	return subscriber.RestoreSubscriber(
		id, email,
		dto.FirstName, dto.LastName,
		dto.IsActive, dto.WantsPromotions,
		dto.SubscribedAt, dto.UnsubscribedAt,
	)
}
