package courier

import (
	"errors"
	"fmt"
	"slices"

	"courierapi/internal/core/domain/model/kernel"
	"courierapi/internal/pkg/errs"
	"courierapi/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrVehicleTypeIsRequired is returned when a courier has an empty vehicle type.
	ErrVehicleTypeIsRequired = errs.NewValueIsRequiredError("courier_type")
	// ErrRegionsAreRequired is returned when a courier has no serviceable region.
	ErrRegionsAreRequired = errs.NewValueIsRequiredError("regions")
	// ErrWorkingHoursAreRequired is returned when a courier has no working window.
	ErrWorkingHoursAreRequired = errs.NewValueIsRequiredError("working_hours")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier. It is the aggregate root that owns the courier's
// matching attributes and the list of orders assigned to it.
//
// Key responsibilities:
//   - Holding identity, vehicle type, regions and working hours
//   - Deriving carrying capacity from the vehicle type
//   - Recording assigned orders in assignment order
//
// Business rules:
//   - ID must be positive
//   - Regions and working hours must be non-empty
//   - The assigned order list is append-only and free of duplicates
//
// Example usage:
//
//	hours, _ := kernel.ParseTimeWindows([]string{"09:00-18:00"})
//	c, err := courier.NewCourier(1, courier.Bike, []int{1, 12}, hours)
//	if err != nil {
//	    // Handle construction error
//	}
//	capacity, _ := c.Capacity() // 15.0
type Courier struct {
	// id uniquely identifies the courier
	id int64
	// vehicleType determines the carrying capacity
	vehicleType VehicleType
	// regions are the serviceable region identifiers
	regions []int
	// workingHours are the availability windows of the courier
	workingHours []kernel.TimeWindow
	// orderIDs are the assigned orders, oldest first
	orderIDs []int64
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a courier with no assigned orders.
//
// Parameters:
//   - id: unique positive identifier supplied by the client
//   - vehicleType: one of Foot, Bike, Car
//   - regions: serviceable regions (at least one)
//   - workingHours: availability windows (at least one)
//
// Returns:
//   - *Courier: the new courier
//   - error: all validation failures joined together
//
// Example:
//
//	c, err := courier.NewCourier(7, courier.Car, []int{3}, hours)
//	if errors.Is(err, errs.ErrUnknownVehicleType) {
//	    // reject payload
//	}
func NewCourier(id int64, vehicleType VehicleType, regions []int, workingHours []kernel.TimeWindow) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.ChangeVehicleType(vehicleType),
		c.ChangeRegions(regions),
		c.ChangeWorkingHours(workingHours),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistent storage, including its assigned
// order list.
//
// Unlike NewCourier, the vehicle type only has to be non-empty: rows written with a type
// that is no longer supported still load, and fail later when a capacity is required.
//
// Parameters:
//   - id: courier identifier
//   - vehicleType: stored vehicle type
//   - regions: stored regions
//   - workingHours: stored working windows
//   - orderIDs: assigned orders, oldest first
//
// Returns:
//   - *Courier: restored aggregate
//   - error: validation error if any stored value is invalid
func RestoreCourier(
	id int64,
	vehicleType VehicleType,
	regions []int,
	workingHours []kernel.TimeWindow,
	orderIDs []int64,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setStoredVehicleType(vehicleType),
		c.ChangeRegions(regions),
		c.ChangeWorkingHours(workingHours),
	); err != nil {
		return nil, err
	}

	for _, orderID := range orderIDs {
		if err := c.AcceptOrder(orderID); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Validate checks that the courier was built by NewCourier or RestoreCourier.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by identifier.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id == other.id
}

// ID returns the courier identifier.
func (c *Courier) ID() int64 {
	return c.id
}

// VehicleType returns the courier's vehicle type.
func (c *Courier) VehicleType() VehicleType {
	return c.vehicleType
}

// Regions returns a copy of the serviceable regions.
func (c *Courier) Regions() []int {
	return slices.Clone(c.regions)
}

// WorkingHours returns a copy of the availability windows.
func (c *Courier) WorkingHours() []kernel.TimeWindow {
	return slices.Clone(c.workingHours)
}

// OrderIDs returns a copy of the assigned order identifiers, oldest first.
func (c *Courier) OrderIDs() []int64 {
	return slices.Clone(c.orderIDs)
}

// Capacity returns the maximum weight of a single order the courier can carry.
//
// Returns:
//   - float64: capacity of the courier's vehicle type
//   - error: UnknownVehicleTypeError for a restored courier with an unsupported type
func (c *Courier) Capacity() (float64, error) {
	return c.vehicleType.Capacity()
}

// ServesRegion reports whether region is among the courier's regions.
func (c *Courier) ServesRegion(region int) bool {
	return slices.Contains(c.regions, region)
}

// HasOrder reports whether the order is in the assigned list.
func (c *Courier) HasOrder(orderID int64) bool {
	return slices.Contains(c.orderIDs, orderID)
}

// AcceptOrder appends orderID to the assigned order list.
// Accepting the same order twice keeps a single entry.
func (c *Courier) AcceptOrder(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order_id", fmt.Errorf("%d is not greater than 0", orderID))
	}
	if c.HasOrder(orderID) {
		return nil
	}
	c.orderIDs = append(c.orderIDs, orderID)
	return nil
}

// ChangeVehicleType replaces the vehicle type. The new type must be supported.
func (c *Courier) ChangeVehicleType(vehicleType VehicleType) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}
	if !vehicleType.IsKnown() {
		return errs.NewUnknownVehicleTypeError(string(vehicleType))
	}
	c.vehicleType = vehicleType
	return nil
}

// ChangeRegions replaces the serviceable regions. Duplicates are dropped, order is kept.
func (c *Courier) ChangeRegions(regions []int) error {
	if len(regions) == 0 {
		return ErrRegionsAreRequired
	}

	unique := make([]int, 0, len(regions))
	for _, r := range regions {
		if !slices.Contains(unique, r) {
			unique = append(unique, r)
		}
	}
	c.regions = unique
	return nil
}

// ChangeWorkingHours replaces the availability windows.
func (c *Courier) ChangeWorkingHours(workingHours []kernel.TimeWindow) error {
	if len(workingHours) == 0 {
		return ErrWorkingHoursAreRequired
	}
	for _, w := range workingHours {
		if err := w.Validate(); err != nil {
			return err
		}
	}
	c.workingHours = slices.Clone(workingHours)
	return nil
}

func (c *Courier) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("courier_id", fmt.Errorf("%d is not greater than 0", id))
	}
	c.id = id
	return nil
}

func (c *Courier) setStoredVehicleType(vehicleType VehicleType) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}
	c.vehicleType = vehicleType
	return nil
}
