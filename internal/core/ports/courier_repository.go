// Package ports defines repository interfaces for the courier assignment domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"courierapi/internal/core/domain/model/courier"
)

// CourierRepository defines the persistence contract for courier aggregates.
// Provides methods for storing and retrieving couriers together with their assigned
// order list.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate, including orders appended
	// to its assigned list. Entries already stored are left as they are.
	Update(ctx context.Context, courier *courier.Courier) error

	// AppendOrder adds orderID to the end of the courier's assigned list without touching
	// the courier's attributes. An order already listed is left where it is.
	// Returns errs.ObjectNotFoundError when no courier has that id.
	AppendOrder(ctx context.Context, courierID, orderID int64) error

	// Get retrieves a courier aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no courier has that id.
	Get(ctx context.Context, id int64) (*courier.Courier, error)

	// ListIDs returns the identifiers of all couriers in ascending order.
	// Used by the assignment sweep to visit every courier.
	ListIDs(ctx context.Context) ([]int64, error)
}
