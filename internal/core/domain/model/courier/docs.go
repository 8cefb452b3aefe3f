// Package courier provides the Courier aggregate of the dispatch domain.
//
// The package includes:
//   - Courier: the aggregate root holding vehicle type, serviceable regions, working hours
//     and the ordered list of orders assigned to the courier
//   - VehicleType: foot, bike or car, with a fixed capacity per type
//
// Key business rules:
//   - Couriers are created with a known vehicle type, at least one region and at least
//     one working window
//   - Capacity is derived from the vehicle type only; unknown types never get a capacity
//   - The assigned order list only grows; completing an order does not remove it
package courier
