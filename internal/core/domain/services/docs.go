// Package services provides domain services that implement the matching rules spanning
// the courier and order aggregates.
//
// The package includes:
//   - Overlaps: the time window containment test
//   - EligibilityFilter: derives candidate criteria (capacity, regions) from a courier
//   - OrderDispatcher: decides whether a courier may take an order and assigns it
//
// Domain services coordinate between aggregates, implementing business logic that
// does not naturally belong to a single aggregate root.
package services
