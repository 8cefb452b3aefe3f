package commands

import (
	"errors"
	"fmt"

	"courierapi/internal/pkg/errs"
	"courierapi/internal/pkg/guard"
)

var (
	ErrUpdateCourierCommandIsNotConstructed = errors.New(
		"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one of courier_type, regions, working_hours is required")
)

// UpdateCourierCommand is a partial update of a courier. A nil field is left unchanged;
// a present field replaces the stored value and must itself be valid (an empty list is
// rejected, not treated as absent).
type UpdateCourierCommand struct {
	courierID    int64
	vehicleType  *string
	regions      []int
	workingHours []string

	guard guard.ConstructorGuard
}

// NewUpdateCourierCommand creates a partial update. At least one field must be present.
func NewUpdateCourierCommand(
	courierID int64,
	vehicleType *string,
	regions []int,
	workingHours []string,
) (UpdateCourierCommand, error) {
	if courierID <= 0 {
		return UpdateCourierCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"courier_id", fmt.Errorf("%d is not greater than 0", courierID),
		)
	}
	if vehicleType == nil && regions == nil && workingHours == nil {
		return UpdateCourierCommand{}, ErrNothingToUpdate
	}

	return UpdateCourierCommand{
		courierID:    courierID,
		vehicleType:  vehicleType,
		regions:      regions,
		workingHours: workingHours,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

// CourierID returns the courier to update.
func (c UpdateCourierCommand) CourierID() int64 {
	return c.courierID
}

// VehicleType returns the new vehicle type, or nil to keep the current one.
func (c UpdateCourierCommand) VehicleType() *string {
	return c.vehicleType
}

// Regions returns the new regions, or nil to keep the current ones.
func (c UpdateCourierCommand) Regions() []int {
	return c.regions
}

// WorkingHours returns the new working hours, or nil to keep the current ones.
func (c UpdateCourierCommand) WorkingHours() []string {
	return c.workingHours
}
