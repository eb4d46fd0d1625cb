package orderrepo

import (
	"context"
	"errors"

	"catertrack/internal/core/domain/model/kernel"
	"catertrack/internal/core/domain/model/order"
	"catertrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(number kernel.TrackingNumber, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its tracking history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.TrackingNumber(), aggregate)
	return nil
}

// Update saves an existing order to the database.
// The history is append-only, so existing entries are left untouched and only
// entries for newly reached statuses are inserted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Select("*") forces nil location columns back to NULL when transit ends.
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Omit(clause.Associations).
		Select("*").
		Where("tracking_number = ?", dto.TrackingNumber).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.History) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.History).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.TrackingNumber(), aggregate)
	return nil
}

// GetByCredentials retrieves an order matching both the tracking number and the
// customer email, byte for byte. Any mismatch in either credential yields the
// same ObjectNotFoundError, revealing nothing about which credential failed.
func (r *GormOrderRepository) GetByCredentials(
	ctx context.Context,
	number kernel.TrackingNumber,
	email kernel.Email,
) (*order.Order, error) {
	if err := errors.Join(number.Validate(), email.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_tracking_events.status")
		}).
		First(&dto, "tracking_number = ? AND customer_email = ?", number.String(), email.String()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUndelivered retrieves all orders that have not reached Delivered status.
func (r *GormOrderRepository) GetAllUndelivered(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_tracking_events.status")
		}).
		Find(&dtos, "status != ?", order.Delivered).
		Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
