package services

import (
	"errors"

	"courierapi/internal/core/domain/model/courier"
	"courierapi/internal/core/domain/model/order"
)

// ErrOrderNotEligible is returned when a courier cannot take an order: it is too heavy,
// outside the courier's regions, already assigned, or no courier window contains a
// delivery window.
var ErrOrderNotEligible = errors.New("order is not eligible for courier")

// OrderDispatcher is a domain service that decides whether a courier may take an order and
// performs the order side of the assignment.
//
// Key responsibilities:
//   - Validating both aggregates
//   - Applying the candidate criteria and the window containment test
//   - Moving the order to Assigned
//
// The courier side (recording the order in the courier's list) is left to the caller,
// which does it only after storage has accepted the order transition.
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	if err := dispatcher.Dispatch(c, o); errors.Is(err, services.ErrOrderNotEligible) {
//	    // skip this order
//	}
type OrderDispatcher struct {
	filter EligibilityFilter
}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Eligible reports whether c may take o.
//
// Returns:
//   - bool: true when o passes the criteria derived from c and the window containment test
//   - error: validation errors or UnknownVehicleTypeError
func (d OrderDispatcher) Eligible(c *courier.Courier, o *order.Order) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}

	criteria, err := d.filter.Criteria(c)
	if err != nil {
		return false, err
	}

	if !criteria.Matches(o) {
		return false, nil
	}

	return Overlaps(c.WorkingHours(), o.DeliveryHours()), nil
}

// Dispatch assigns o to c when c is eligible to take it.
//
// Returns:
//   - nil when o is now Assigned to c
//   - ErrOrderNotEligible when c may not take o
//   - validation or transition errors otherwise
func (d OrderDispatcher) Dispatch(c *courier.Courier, o *order.Order) error {
	ok, err := d.Eligible(c, o)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderNotEligible
	}

	return o.Assign(c.ID())
}
