package courier

import (
	"courierapi/internal/pkg/errs"
)

// VehicleType is the means of transport of a courier. It determines the courier's
// carrying capacity and nothing else.
type VehicleType string

const (
	// Foot couriers carry up to 10 weight units.
	Foot VehicleType = "foot"
	// Bike couriers carry up to 15 weight units.
	Bike VehicleType = "bike"
	// Car couriers carry up to 50 weight units.
	Car VehicleType = "car"
)

// capacities is the fixed capacity table. It is never modified after initialisation.
var capacities = map[VehicleType]float64{
	Foot: 10.0,
	Bike: 15.0,
	Car:  50.0,
}

// ParseVehicleType converts an API or storage value into a known VehicleType.
//
// Returns:
//   - VehicleType: the matching vehicle type
//   - error: UnknownVehicleTypeError if the value is not foot, bike or car
func ParseVehicleType(value string) (VehicleType, error) {
	t := VehicleType(value)
	if !t.IsKnown() {
		return "", errs.NewUnknownVehicleTypeError(value)
	}
	return t, nil
}

// VehicleTypes lists the supported vehicle types in ascending capacity.
func VehicleTypes() []VehicleType {
	return []VehicleType{Foot, Bike, Car}
}

// IsKnown reports whether the capacity table has an entry for t.
func (t VehicleType) IsKnown() bool {
	_, ok := capacities[t]
	return ok
}

// Capacity returns the maximum order weight a courier with this vehicle may carry.
// Unknown types fail instead of defaulting to zero or unlimited capacity.
//
// Example:
//
//	c, err := courier.Bike.Capacity() // 15.0, nil
//	_, err = courier.VehicleType("plane").Capacity() // errs.ErrUnknownVehicleType
func (t VehicleType) Capacity() (float64, error) {
	capacity, ok := capacities[t]
	if !ok {
		return 0, errs.NewUnknownVehicleTypeError(string(t))
	}
	return capacity, nil
}

// String returns the wire form of the vehicle type.
func (t VehicleType) String() string {
	return string(t)
}
