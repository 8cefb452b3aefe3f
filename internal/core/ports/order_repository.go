package ports

import (
	"context"

	"courierapi/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// AddMany persists a batch of new orders. Either all of them are stored or none.
	AddMany(ctx context.Context, aggregates []*order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns errs.ObjectNotFoundError when no order has that id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Assign stores the Created -> Assigned transition of aggregate as a compare-and-swap:
	// the stored order must still be unassigned and in Created status.
	// Returns order.ErrOrderAlreadyAssigned when another writer got there first.
	Assign(ctx context.Context, aggregate *order.Order) error

	// FindCandidates returns unassigned orders matching criteria, in criteria.Ordering.
	FindCandidates(ctx context.Context, criteria order.CandidateCriteria) ([]*order.Order, error)
}
