package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"courierapi/internal/core/domain/model/order"
	"courierapi/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	return r.AddMany(ctx, []*order.Order{aggregate})
}

// AddMany saves a batch of new orders with a single insert.
// A stored id is reported as errs.ValueIsInvalidError.
func (r *GormOrderRepository) AddMany(ctx context.Context, aggregates []*order.Order) error {
	if len(aggregates) == 0 {
		return nil
	}

	dtos := make([]OrderDTO, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if err := aggregate.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(aggregate))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("order_id", err)
		}
		return err
	}

	for _, aggregate := range aggregates {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Assign stores an order that has just moved to Assigned. The update only matches a row
// that is still unassigned, so of two concurrent writers exactly one succeeds; the other
// gets order.ErrOrderAlreadyAssigned.
func (r *GormOrderRepository) Assign(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if dto.CourierID == nil || order.Status(dto.Status) != order.Assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"order", fmt.Errorf("order %d is %s, not assigned", dto.ID, order.Status(dto.Status)),
		)
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND courier_id IS NULL AND status = ?", dto.ID, int(order.Created)).
		Updates(map[string]any{
			"courier_id": *dto.CourierID,
			"status":     dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return order.ErrOrderAlreadyAssigned
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindCandidates retrieves unassigned orders not heavier than criteria.MaxWeight in one of
// criteria.Regions, sorted by criteria.Ordering.
func (r *GormOrderRepository) FindCandidates(
	ctx context.Context,
	criteria order.CandidateCriteria,
) ([]*order.Order, error) {
	if len(criteria.Regions) == 0 {
		return []*order.Order{}, nil
	}

	regions := make([]int64, 0, len(criteria.Regions))
	for _, region := range criteria.Regions {
		regions = append(regions, int64(region))
	}

	query := r.db.WithContext(ctx).
		Where("courier_id IS NULL AND status = ?", int(order.Created)).
		Where("weight <= ?", criteria.MaxWeight).
		Where("region = ANY(?)", pq.Array(regions))

	switch criteria.Ordering {
	case order.ByWeight:
		query = query.Order("weight").Order("id")
	default:
		query = query.Order("id")
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
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
