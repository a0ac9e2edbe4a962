package subscriberrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/subscriber"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSubscriberRepository implements SubscriberRepository using GORM.
type GormSubscriberRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSubscriberRepository creates a new GORM subscriber repository.
func NewGormSubscriberRepository(db *gorm.DB, tracker aggregateTracker) *GormSubscriberRepository {
	return &GormSubscriberRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new subscriber to the database.
// Returns errs.ObjectAlreadyExistsError when the email is already taken.
// The pre-insert lookup gives a clean error on the common path; the unique
// index still catches concurrent inserts, surfaced via gorm.ErrDuplicatedKey.
func (r *GormSubscriberRepository) Add(ctx context.Context, aggregate *subscriber.Subscriber) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	email := aggregate.Email().String()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&SubscriberDTO{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewObjectAlreadyExistsError("email", email)
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("email", email, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing subscriber to the database.
func (r *GormSubscriberRepository) Update(ctx context.Context, aggregate *subscriber.Subscriber) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select lists the columns explicitly so false and nil survive the
	// update; Updates alone skips zero values.
	result := r.db.WithContext(ctx).
		Model(&SubscriberDTO{}).
		Where("id = ?", dto.ID).
		Select("Email", "FirstName", "LastName", "IsActive",
			"WantsPromotions", "SubscribedAt", "UnsubscribedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a subscriber by ID.
func (r *GormSubscriberRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*subscriber.Subscriber, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubscriberDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("subscriber", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a subscriber by its unique email address.
func (r *GormSubscriberRepository) GetByEmail(
	ctx context.Context, email kernel.Email,
) (*subscriber.Subscriber, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	var dto SubscriberDTO
	err := r.db.WithContext(ctx).First(&dto, "email = ?", email.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("subscriber", email.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all active subscribers, optionally filtered by the
// promotional opt-in flag.
func (r *GormSubscriberRepository) GetAllActive(
	ctx context.Context, wantsPromotions *bool,
) ([]*subscriber.Subscriber, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if wantsPromotions != nil {
		query = query.Where("wants_promotions = ?", *wantsPromotions)
	}

	var dtos []SubscriberDTO
	if err := query.Order("subscribed_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetActiveByIDs retrieves the active subscribers among the given ids.
// Unknown and inactive ids are silently skipped.
func (r *GormSubscriberRepository) GetActiveByIDs(
	ctx context.Context, ids []kernel.UUID,
) ([]*subscriber.Subscriber, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []SubscriberDTO
	err := r.db.WithContext(ctx).
		Where("id IN ?", raw).
		Where("is_active = ?", true).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []SubscriberDTO) ([]*subscriber.Subscriber, error) {
	subscribers := make([]*subscriber.Subscriber, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		subscribers = append(subscribers, s)
	}

	return subscribers, nil
}
