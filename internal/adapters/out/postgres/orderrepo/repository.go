package orderrepo

import (
	"context"
	"errors"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/order"
	"kirim/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its stops.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing order and the completion state of its
// stops. Callers load the order through Get within the same transaction, so
// the row lock taken there serializes concurrent transitions.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("driver_id", "vehicle_id", "status", "notes").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	for _, stop := range dto.Stops {
		err := r.db.WithContext(ctx).Model(&StopDTO{}).
			Where("id = ?", stop.ID).
			Update("completed", stop.Completed).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its stops by ID. The order row is locked for
// the remainder of the transaction.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("sequence") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingID retrieves an order by its public tracking identifier.
func (r *GormOrderRepository) GetByTrackingID(ctx context.Context, trackingID string) (*order.Order, error) {
	if trackingID == "" {
		return nil, errs.NewValueIsRequiredError("trackingID")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB { return db.Order("sequence") }).
		First(&dto, "tracking_id = ?", trackingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", trackingID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddReport appends a driver field report for an order.
func (r *GormOrderRepository) AddReport(ctx context.Context, report *order.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	dto := reportFromDomain(report)
	return r.db.WithContext(ctx).Create(&dto).Error
}
