package http

import (
	"time"

	"courierapi/internal/core/application/usecases/queries"
)

// Error is the body of every non-batch error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemID references one item of a batch.
type ItemID struct {
	ID int64 `json:"id"`
}

// ValidationError is the body of a rejected batch import.
type ValidationError struct {
	ValidationError map[string][]ItemID `json:"validation_error"`
}

// CourierItem is one courier of a POST /couriers payload.
type CourierItem struct {
	CourierID    int64    `json:"courier_id" validate:"required,gt=0"`
	CourierType  string   `json:"courier_type" validate:"required,courier_type"`
	Regions      []int    `json:"regions" validate:"required,min=1,dive,gte=0"`
	WorkingHours []string `json:"working_hours" validate:"required,min=1,dive,time_window"`
}

// CreateCouriersRequest is the POST /couriers payload.
type CreateCouriersRequest struct {
	Data []CourierItem `json:"data"`
}

// CreateCouriersResponse lists the imported couriers.
type CreateCouriersResponse struct {
	Couriers []ItemID `json:"couriers"`
}

// UpdateCourierRequest is the PATCH /couriers/{courier_id} payload. Absent fields are
// left unchanged.
type UpdateCourierRequest struct {
	CourierType  *string   `json:"courier_type" validate:"omitempty,courier_type"`
	Regions      *[]int    `json:"regions" validate:"omitempty,min=1,dive,gte=0"`
	WorkingHours *[]string `json:"working_hours" validate:"omitempty,min=1,dive,time_window"`
}

// Courier is the courier document.
type Courier struct {
	CourierID    int64    `json:"courier_id"`
	CourierType  string   `json:"courier_type"`
	Regions      []int    `json:"regions"`
	WorkingHours []string `json:"working_hours"`
	Orders       []ItemID `json:"orders"`
}

// CouriersPage is the GET /couriers response.
type CouriersPage struct {
	Couriers []Courier `json:"couriers"`
	Offset   int       `json:"offset"`
	Limit    int       `json:"limit"`
}

// OrderItem is one order of a POST /orders payload.
type OrderItem struct {
	OrderID       int64    `json:"order_id" validate:"required,gt=0"`
	Weight        float64  `json:"weight" validate:"required,gt=0"`
	Region        *int     `json:"region" validate:"required,gte=0"`
	DeliveryHours []string `json:"delivery_hours" validate:"required,min=1,dive,time_window"`
}

// CreateOrdersRequest is the POST /orders payload.
type CreateOrdersRequest struct {
	Data []OrderItem `json:"data"`
}

// CreateOrdersResponse lists the imported orders.
type CreateOrdersResponse struct {
	Orders []ItemID `json:"orders"`
}

// Order is the order document.
type Order struct {
	OrderID       int64      `json:"order_id"`
	Weight        float64    `json:"weight"`
	Region        int        `json:"region"`
	DeliveryHours []string   `json:"delivery_hours"`
	Status        string     `json:"status"`
	CourierID     *int64     `json:"courier_id"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// AssignOrdersRequest is the POST /orders/assign payload.
type AssignOrdersRequest struct {
	CourierID int64 `json:"courier_id" validate:"required,gt=0"`
}

// AssignOrdersResponse lists every order assigned to the courier, oldest first.
type AssignOrdersResponse struct {
	Orders []ItemID `json:"orders"`
}

// CompleteOrderRequest is the POST /orders/complete payload.
type CompleteOrderRequest struct {
	CourierID int64 `json:"courier_id" validate:"required,gt=0"`
	OrderID   int64 `json:"order_id" validate:"required,gt=0"`
}

// CompleteOrderResponse echoes the courier id under order_id, the field name existing
// clients read.
type CompleteOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

func toItemIDs(ids []int64) []ItemID {
	items := make([]ItemID, 0, len(ids))
	for _, id := range ids {
		items = append(items, ItemID{ID: id})
	}
	return items
}

func toCourier(c queries.CourierResponse) Courier {
	return Courier{
		CourierID:    c.ID,
		CourierType:  c.VehicleType,
		Regions:      nonNil(c.Regions),
		WorkingHours: nonNil(c.WorkingHours),
		Orders:       toItemIDs(c.OrderIDs),
	}
}

func toOrder(o queries.OrderResponse) Order {
	return Order{
		OrderID:       o.ID,
		Weight:        o.Weight,
		Region:        o.Region,
		DeliveryHours: nonNil(o.DeliveryHours),
		Status:        o.Status,
		CourierID:     o.CourierID,
		CompletedAt:   o.CompletedAt,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
