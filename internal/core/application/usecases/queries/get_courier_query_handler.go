package queries

import (
	"context"

	"courierapi/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCourierQueryHandler reads a courier and its assigned orders with a single statement.
type GetCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierQueryHandler creates a handler for courier lookups.
func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

// Handle returns the courier, or errs.ObjectNotFoundError.
func (h GetCourierQueryHandler) Handle(ctx context.Context, query GetCourierQuery) (CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+courierColumns+`
		FROM couriers c
		WHERE c.id = ?
	`, query.CourierID()).Rows()
	if err != nil {
		return CourierResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CourierResponse{}, err
		}
		return CourierResponse{}, errs.NewObjectNotFoundError("courier", query.CourierID())
	}

	return scanCourier(rows)
}
