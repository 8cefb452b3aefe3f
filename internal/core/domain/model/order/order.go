package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"courierapi/internal/core/domain/model/kernel"
	"courierapi/internal/pkg/errs"
	"courierapi/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDeliveryHoursAreRequired is returned when an order has no delivery window.
	ErrDeliveryHoursAreRequired = errs.NewValueIsRequiredError("delivery_hours")

	// ErrOrderAlreadyAssigned is returned by storage when a conditional assignment finds the
	// order already taken by another courier.
	ErrOrderAlreadyAssigned = errors.New("order is already assigned")
)

// Order represents a delivery order in the system. It is the aggregate root that manages
// the order lifecycle from creation through assignment to completion.
//
// Order follows these invariants:
//   - Must have a positive identifier
//   - Weight must be positive
//   - Must have at least one delivery window
//   - The assigned courier is set once, on the Created -> Assigned transition, and kept
//     through completion
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id int64

	// weight is the order weight in kilograms
	weight float64

	// region is the destination region
	region int

	// deliveryHours are the windows in which the order may be delivered
	deliveryHours []kernel.TimeWindow

	// courierID is the assigned courier's ID (nil if unassigned)
	courierID *int64

	// status represents the current state in the order lifecycle
	status Status

	// completedAt is set when the courier reports the delivery
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new unassigned Order with validation.
//
// Parameters:
//   - id: client supplied identifier (must be positive)
//   - weight: order weight (must be positive)
//   - region: destination region
//   - deliveryHours: delivery windows (at least one)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: all validation errors joined together
//
// Example:
//
//	hours, _ := kernel.ParseTimeWindows([]string{"10:00-11:00"})
//	o, err := order.NewOrder(42, 2.5, 1, hours)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id int64, weight float64, region int, deliveryHours []kernel.TimeWindow) (*Order, error) {
	o := &Order{
		status: Created,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setWeight(weight),
		o.setDeliveryHours(deliveryHours),
	); err != nil {
		return nil, err
	}
	o.region = region

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage.
//
// Parameters:
//   - id, weight, region, deliveryHours: as in NewOrder
//   - status: stored lifecycle state
//   - courierID: assigned courier, nil for Created orders
//   - completedAt: completion time, nil unless status is Completed
//
// Returns:
//   - *Order: restored aggregate
//   - error: validation error if the stored state is inconsistent
func RestoreOrder(
	id int64,
	weight float64,
	region int,
	deliveryHours []kernel.TimeWindow,
	status Status,
	courierID *int64,
	completedAt *time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setWeight(weight),
		o.setDeliveryHours(deliveryHours),
		o.setStatus(status, courierID),
	); err != nil {
		return nil, err
	}
	o.region = region

	if courierID != nil {
		id := *courierID
		o.courierID = &id
	}
	if completedAt != nil && status == Completed {
		at := *completedAt
		o.completedAt = &at
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identifier.
func (o *Order) ID() int64 {
	return o.id
}

// Weight returns the order's weight.
func (o *Order) Weight() float64 {
	return o.weight
}

// Region returns the destination region.
func (o *Order) Region() int {
	return o.region
}

// DeliveryHours returns a copy of the delivery windows.
func (o *Order) DeliveryHours() []kernel.TimeWindow {
	return slices.Clone(o.deliveryHours)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's ID, or nil if no courier is assigned.
func (o *Order) Courier() *int64 {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

// CompletedAt returns the completion time, or nil if the order is not completed.
func (o *Order) CompletedAt() *time.Time {
	if o.completedAt == nil {
		return nil
	}
	at := *o.completedAt
	return &at
}

// IsAssigned reports whether any courier owns the order.
func (o *Order) IsAssigned() bool {
	return o.courierID != nil
}

// IsAssignedTo reports whether courierID owns the order.
func (o *Order) IsAssignedTo(courierID int64) bool {
	return o.courierID != nil && *o.courierID == courierID
}

// Assign assigns the order to a courier and updates the status to Assigned.
//
// This method enforces the following business rules:
//   - The courier ID must be positive
//   - The order must be in Created status; an assigned order is never reassigned
//
// Parameters:
//   - courierID: The ID of the courier to assign
//
// Returns:
//   - nil on successful assignment
//   - error if courier ID is invalid or status transition is not allowed
//
// Example:
//
//	if err := o.Assign(7); err != nil {
//	    // Handle assignment failure
//	}
func (o *Order) Assign(courierID int64) error {
	if courierID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier_id", fmt.Errorf("%d is not greater than 0", courierID))
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Complete marks the order as delivered by courierID at the given time.
//
// This method enforces the following business rules:
//   - The order must be assigned to courierID, otherwise AssignmentMismatchError
//   - Completing an already completed order by its owner changes nothing
//
// Parameters:
//   - courierID: the courier reporting the delivery
//   - at: completion time
//
// Returns:
//   - nil on success (including a repeated completion)
//   - *errs.AssignmentMismatchError if the order is unassigned or owned by someone else
//
// Example:
//
//	err := o.Complete(5, time.Now())
//	if errors.Is(err, errs.ErrAssignmentMismatch) {
//	    // order belongs to another courier
//	}
func (o *Order) Complete(courierID int64, at time.Time) error {
	if !o.IsAssignedTo(courierID) {
		return errs.NewAssignmentMismatchError(o.id, courierID, o.Courier())
	}

	if o.status == Completed {
		return nil
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.completedAt = &at
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order_id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

// setWeight validates and sets the order's weight.
// Weight must be positive (greater than 0).
func (o *Order) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%g is not greater than 0", weight))
	}
	o.weight = weight
	return nil
}

func (o *Order) setDeliveryHours(deliveryHours []kernel.TimeWindow) error {
	if len(deliveryHours) == 0 {
		return ErrDeliveryHoursAreRequired
	}
	for _, w := range deliveryHours {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	o.deliveryHours = slices.Clone(deliveryHours)
	return nil
}

func (o *Order) setStatus(status Status, courierID *int64) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}
	o.status = status
	return nil
}
