package commands

import (
	"context"
	"errors"

	"courierapi/internal/pkg/errs"
	"courierapi/internal/pkg/guard"
)

var ErrSweepAssignmentsCommandIsNotConstructed = errors.New(
	"SweepAssignmentsCommand must be created via NewSweepAssignmentsCommand constructor",
)

// SweepAssignmentsCommand runs the assignment for every stored courier.
type SweepAssignmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepAssignmentsCommand creates a parameterless sweep command.
func NewSweepAssignmentsCommand() SweepAssignmentsCommand {
	return SweepAssignmentsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SweepAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrSweepAssignmentsCommandIsNotConstructed)
}

// SweepAssignmentsCommandHandler visits couriers in id order and assigns orders to each.
// A courier with an unsupported vehicle type, or one removed while the sweep runs, is
// skipped; any other error stops the sweep.
type SweepAssignmentsCommandHandler struct {
	uowFactory UoWFactory
	assign     AssignOrdersCommandHandler
}

// NewSweepAssignmentsCommandHandler creates a sweep handler on top of an assignment handler.
func NewSweepAssignmentsCommandHandler(
	uowFactory UoWFactory,
	assign AssignOrdersCommandHandler,
) SweepAssignmentsCommandHandler {
	return SweepAssignmentsCommandHandler{
		uowFactory: uowFactory,
		assign:     assign,
	}
}

// Handle returns the number of couriers visited.
func (h SweepAssignmentsCommandHandler) Handle(ctx context.Context, cmd SweepAssignmentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	ids, err := h.uowFactory.Create().CourierRepository().ListIDs(ctx)
	if err != nil {
		return 0, err
	}

	visited := 0
	for _, id := range ids {
		if err = ctx.Err(); err != nil {
			return visited, err
		}

		assignCmd, cmdErr := NewAssignOrdersCommand(id)
		if cmdErr != nil {
			return visited, cmdErr
		}

		_, err = h.assign.Handle(ctx, assignCmd)
		if errors.Is(err, errs.ErrUnknownVehicleType) || errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return visited, err
		}
		visited++
	}

	return visited, nil
}
