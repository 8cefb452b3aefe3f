package commands

import (
	"errors"
	"fmt"

	"courierapi/internal/pkg/errs"
	"courierapi/internal/pkg/guard"
)

var ErrAssignOrdersCommandIsNotConstructed = errors.New(
	"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
)

// AssignOrdersCommand asks for every unassigned order the courier is eligible to carry.
//
// Example:
//
//	cmd, err := NewAssignOrdersCommand(5)
//	if err != nil {
//	    return err
//	}
//	orderIDs, err := handler.Handle(ctx, cmd)
type AssignOrdersCommand struct {
	courierID int64

	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates an assignment request for a courier.
func NewAssignOrdersCommand(courierID int64) (AssignOrdersCommand, error) {
	if courierID <= 0 {
		return AssignOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"courier_id", fmt.Errorf("%d is not greater than 0", courierID),
		)
	}

	return AssignOrdersCommand{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}

// CourierID returns the courier requesting orders.
func (c AssignOrdersCommand) CourierID() int64 {
	return c.courierID
}
