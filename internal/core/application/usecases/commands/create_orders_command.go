package commands

import (
	"errors"

	"courierapi/internal/pkg/guard"
)

var (
	ErrCreateOrdersCommandIsNotConstructed = errors.New(
		"CreateOrdersCommand must be created via NewCreateOrdersCommand constructor",
	)
	ErrOrdersAreRequired = errors.New("at least one order is required")
)

// OrderItem is one order of a batch import, as received from the client.
type OrderItem struct {
	ID            int64
	Weight        float64
	Region        int
	DeliveryHours []string
}

// CreateOrdersCommand imports a batch of orders, all-or-nothing.
type CreateOrdersCommand struct {
	items []OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrdersCommand creates a batch import command for a non-empty batch.
func NewCreateOrdersCommand(items []OrderItem) (CreateOrdersCommand, error) {
	if len(items) == 0 {
		return CreateOrdersCommand{}, ErrOrdersAreRequired
	}

	return CreateOrdersCommand{
		items: items,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrdersCommandIsNotConstructed)
}

// Items returns the orders to import.
func (c CreateOrdersCommand) Items() []OrderItem {
	return c.items
}
