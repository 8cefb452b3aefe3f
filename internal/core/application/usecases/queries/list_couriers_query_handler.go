package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListCouriersQueryHandler retrieves a page of couriers with their assigned orders.
//
// Example:
//
//	handler := NewListCouriersQueryHandler(db)
//	query, _ := NewListCouriersQuery(0, 10)
//
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Found %d couriers\n", len(couriers))
type ListCouriersQueryHandler struct {
	db *gorm.DB
}

// NewListCouriersQueryHandler creates a handler for courier pages.
func NewListCouriersQueryHandler(db *gorm.DB) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{db: db}
}

// Handle returns the requested page sorted by id. An empty page is an empty slice.
func (h ListCouriersQueryHandler) Handle(ctx context.Context, query ListCouriersQuery) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]CourierResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+courierColumns+`
		FROM couriers c
		ORDER BY c.id
		LIMIT ? OFFSET ?
	`, query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		c, scanErr := scanCourier(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		couriers = append(couriers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
