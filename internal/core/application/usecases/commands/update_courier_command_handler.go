package commands

import (
	"context"
	"errors"

	"courierapi/internal/core/domain/model/courier"
	"courierapi/internal/core/domain/model/kernel"
)

// UpdateCourierCommandHandler applies a partial update to a stored courier.
// Orders already assigned to the courier are kept even if they no longer match the new
// attributes.
type UpdateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewUpdateCourierCommandHandler creates a handler for courier updates.
func NewUpdateCourierCommandHandler(uowFactory CourierUoWFactory) UpdateCourierCommandHandler {
	return UpdateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the courier, applies every present field and stores the result.
// Returns errs.ObjectNotFoundError for an unknown courier and the joined validation
// errors of all rejected fields otherwise.
func (h UpdateCourierCommandHandler) Handle(ctx context.Context, cmd UpdateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	c, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = applyCourierChanges(c, cmd); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyCourierChanges(c *courier.Courier, cmd UpdateCourierCommand) error {
	var changeErrs []error

	if vt := cmd.VehicleType(); vt != nil {
		changeErrs = append(changeErrs, c.ChangeVehicleType(courier.VehicleType(*vt)))
	}

	if regions := cmd.Regions(); regions != nil {
		changeErrs = append(changeErrs, c.ChangeRegions(regions))
	}

	if values := cmd.WorkingHours(); values != nil {
		hours, err := kernel.ParseTimeWindows(values)
		if err != nil {
			changeErrs = append(changeErrs, err)
		} else {
			changeErrs = append(changeErrs, c.ChangeWorkingHours(hours))
		}
	}

	return errors.Join(changeErrs...)
}
