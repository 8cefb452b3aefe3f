// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"courierapi/internal/core/domain/model/courier"
	"courierapi/internal/core/domain/model/kernel"

	"github.com/lib/pq"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Regions and working hours are stored as Postgres arrays; the assigned order list lives
// in the courier_orders table.
type CourierDTO struct {
	ID           int64             `gorm:"primaryKey;autoIncrement:false"`
	CourierType  string            `gorm:"type:varchar(16);not null"`
	Regions      pq.Int64Array     `gorm:"type:bigint[];not null"`
	WorkingHours pq.StringArray    `gorm:"type:text[];not null"`
	Orders       []CourierOrderDTO `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// CourierOrderDTO is one entry of a courier's assigned order list. The serial ID keeps
// the assignment order; an order can appear in at most one list.
type CourierOrderDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	CourierID int64 `gorm:"not null;index"`
	OrderID   int64 `gorm:"not null;uniqueIndex"`
}

// TableName specifies the database table name for assigned order entries.
func (CourierOrderDTO) TableName() string {
	return "courier_orders"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	regions := make(pq.Int64Array, 0, len(aggregate.Regions()))
	for _, r := range aggregate.Regions() {
		regions = append(regions, int64(r))
	}

	orders := make([]CourierOrderDTO, 0, len(aggregate.OrderIDs()))
	for _, orderID := range aggregate.OrderIDs() {
		orders = append(orders, CourierOrderDTO{
			CourierID: aggregate.ID(),
			OrderID:   orderID,
		})
	}

	return CourierDTO{
		ID:           aggregate.ID(),
		CourierType:  aggregate.VehicleType().String(),
		Regions:      regions,
		WorkingHours: pq.StringArray(kernel.FormatTimeWindows(aggregate.WorkingHours())),
		Orders:       orders,
	}
}

// toDomain converts a database DTO to a courier domain aggregate using RestoreCourier.
// dto.Orders must be sorted by ID.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	hours, err := kernel.ParseTimeWindows(dto.WorkingHours)
	if err != nil {
		return nil, err
	}

	regions := make([]int, 0, len(dto.Regions))
	for _, r := range dto.Regions {
		regions = append(regions, int(r))
	}

	orderIDs := make([]int64, 0, len(dto.Orders))
	for _, o := range dto.Orders {
		orderIDs = append(orderIDs, o.OrderID)
	}

	return courier.RestoreCourier(dto.ID, courier.VehicleType(dto.CourierType), regions, hours, orderIDs)
}
