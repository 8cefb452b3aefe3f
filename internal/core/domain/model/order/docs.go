// Package order provides domain entities and business logic for order management
// in the courier assignment system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, weight, region, delivery
//     windows and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - CandidateCriteria and Ordering: the description of orders a courier may take
//
// Key business rules:
//   - Orders must have a positive identifier, positive weight and delivery windows
//   - Order status follows a defined workflow: Created -> Assigned -> Completed
//   - An assigned order is never reassigned
//   - Only the assigned courier can complete an order; repeated completion is a no-op
package order
