package services

import (
	"courierapi/internal/core/domain/model/courier"
	"courierapi/internal/core/domain/model/order"
)

// EligibilityFilter derives from a courier the criteria an order must meet before the time
// window check: unassigned, within the courier's capacity and in one of its regions.
//
// The returned criteria are handed to an order repository, which evaluates them in storage
// and returns candidates in the filter's ordering.
type EligibilityFilter struct {
	ordering order.Ordering
}

// NewEligibilityFilter creates a filter producing candidates in the given ordering.
func NewEligibilityFilter(ordering order.Ordering) EligibilityFilter {
	return EligibilityFilter{ordering: ordering}
}

// Criteria builds the candidate criteria for c.
//
// Returns:
//   - order.CandidateCriteria: capacity, regions and ordering
//   - error: courier validation error, or UnknownVehicleTypeError when the courier's
//     vehicle type has no capacity
func (f EligibilityFilter) Criteria(c *courier.Courier) (order.CandidateCriteria, error) {
	if err := c.Validate(); err != nil {
		return order.CandidateCriteria{}, err
	}

	capacity, err := c.Capacity()
	if err != nil {
		return order.CandidateCriteria{}, err
	}

	return order.CandidateCriteria{
		MaxWeight: capacity,
		Regions:   c.Regions(),
		Ordering:  f.ordering,
	}, nil
}
