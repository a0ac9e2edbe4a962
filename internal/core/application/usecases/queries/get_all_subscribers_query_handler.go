package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllSubscribersQueryHandler retrieves active subscribers from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllSubscribersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllSubscribersQueryHandler creates a handler for subscriber listing.
func NewGetAllSubscribersQueryHandler(db *gorm.DB) GetAllSubscribersQueryHandler {
	return GetAllSubscribersQueryHandler{db: db}
}

// Handle executes the query. Deactivated subscribers are never included.
func (h GetAllSubscribersQueryHandler) Handle(
	ctx context.Context,
	query GetAllSubscribersQuery,
) (SubscribersResponse, error) {
	sql := `
		SELECT
			id,
			email,
			first_name,
			last_name,
			wants_promotions,
			subscribed_at
		FROM subscribers
		WHERE is_active
	`
	args := make([]interface{}, 0, 1)
	if query.WantsPromotions() != nil {
		sql += " AND wants_promotions = ?"
		args = append(args, *query.WantsPromotions())
	}
	sql += " ORDER BY subscribed_at"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return SubscribersResponse{}, err
	}
	defer rows.Close()

	subscribers := make([]SubscriberResponse, 0)
	for rows.Next() {
		var rawID uuid.UUID
		var s SubscriberResponse
		var subscribedAt time.Time
		if err = rows.Scan(
			&rawID,
			&s.Email,
			&s.FirstName,
			&s.LastName,
			&s.WantsPromotions,
			&subscribedAt,
		); err != nil {
			return SubscribersResponse{}, err
		}

		id, err := kernel.UUIDFromBytes(rawID[:])
		if err != nil {
			return SubscribersResponse{}, err
		}
		s.ID = id
		s.SubscribedAt = subscribedAt

		subscribers = append(subscribers, s)
	}

	if err = rows.Err(); err != nil {
		return SubscribersResponse{}, err
	}

	return SubscribersResponse{Subscribers: subscribers}, nil
}
