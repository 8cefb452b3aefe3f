package commands

import (
	"errors"

	"courierapi/internal/pkg/guard"
)

var (
	ErrCreateCouriersCommandIsNotConstructed = errors.New(
		"CreateCouriersCommand must be created via NewCreateCouriersCommand constructor",
	)
	ErrCouriersAreRequired = errors.New("at least one courier is required")
)

// CourierItem is one courier of a batch import, as received from the client.
type CourierItem struct {
	ID           int64
	VehicleType  string
	Regions      []int
	WorkingHours []string
}

// CreateCouriersCommand imports a batch of couriers. The batch is all-or-nothing: a single
// invalid item rejects every courier.
//
// Example:
//
//	cmd, err := NewCreateCouriersCommand([]CourierItem{
//	    {ID: 1, VehicleType: "bike", Regions: []int{1, 12}, WorkingHours: []string{"09:00-18:00"}},
//	})
//	if err != nil {
//	    return err
//	}
//	ids, err := handler.Handle(ctx, cmd)
type CreateCouriersCommand struct {
	items []CourierItem

	guard guard.ConstructorGuard
}

// NewCreateCouriersCommand creates a batch import command. The batch must not be empty;
// item level validation happens in the handler so that every invalid id can be reported.
func NewCreateCouriersCommand(items []CourierItem) (CreateCouriersCommand, error) {
	if len(items) == 0 {
		return CreateCouriersCommand{}, ErrCouriersAreRequired
	}

	return CreateCouriersCommand{
		items: items,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCouriersCommand) Validate() error {
	return c.guard.Validate(ErrCreateCouriersCommandIsNotConstructed)
}

// Items returns the couriers to import.
func (c CreateCouriersCommand) Items() []CourierItem {
	return c.items
}
