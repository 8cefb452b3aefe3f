package services

import "courierapi/internal/core/domain/model/kernel"

// Overlaps reports whether at least one courier window fully contains at least one order
// window. Despite the name this is a containment test: an order window that only partially
// intersects every courier window does not match.
//
// Parameters:
//   - courierWindows: working hours of the courier
//   - orderWindows: delivery hours of the order
//
// Returns:
//   - true as soon as a containing pair is found
//   - false for empty input or when no pair matches
//
// Example:
//
//	c, _ := kernel.ParseTimeWindows([]string{"09:00-18:00"})
//	o, _ := kernel.ParseTimeWindows([]string{"10:00-11:00"})
//	services.Overlaps(c, o) // true
//
// Windows are compared as times of day; a window crossing midnight is not supported.
func Overlaps(courierWindows, orderWindows []kernel.TimeWindow) bool {
	for _, cw := range courierWindows {
		for _, ow := range orderWindows {
			if cw.Contains(ow) {
				return true
			}
		}
	}
	return false
}
