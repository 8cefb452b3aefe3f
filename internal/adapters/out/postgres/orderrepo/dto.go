// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"courierapi/internal/core/domain/model/kernel"
	"courierapi/internal/core/domain/model/order"

	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// A NULL courier_id marks an unassigned order. The composite index serves the candidate
// lookup.
type OrderDTO struct {
	ID            int64          `gorm:"primaryKey;autoIncrement:false"`
	Weight        float64        `gorm:"not null"`
	Region        int            `gorm:"not null;index:idx_orders_candidates,priority:2"`
	DeliveryHours pq.StringArray `gorm:"type:text[];not null"`
	CourierID     *int64         `gorm:"index"`
	Status        int            `gorm:"type:smallint;not null;index:idx_orders_candidates,priority:1"`
	CompletedAt   *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID(),
		Weight:        aggregate.Weight(),
		Region:        aggregate.Region(),
		DeliveryHours: pq.StringArray(kernel.FormatTimeWindows(aggregate.DeliveryHours())),
		CourierID:     aggregate.Courier(),
		Status:        int(aggregate.Status()),
		CompletedAt:   aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	hours, err := kernel.ParseTimeWindows(dto.DeliveryHours)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Weight,
		dto.Region,
		hours,
		order.Status(dto.Status),
		dto.CourierID,
		dto.CompletedAt,
	)
}
