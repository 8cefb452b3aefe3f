// Package kernel provides the shared value objects of the courier dispatch domain.
//
// The package includes:
//   - TimeWindow: a clock-time interval written as "HH:MM-HH:MM", used both for courier
//     working hours and for order delivery hours
//
// Time windows carry no date. Comparisons are made on minutes since midnight, so a window
// that crosses midnight ("22:00-02:00") is not supported and compares as an empty interval.
package kernel
