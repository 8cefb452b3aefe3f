package commands

import (
	"errors"
	"fmt"

	"courierapi/internal/pkg/errs"
	"courierapi/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand reports that a courier delivered one of its orders.
type CompleteOrderCommand struct {
	courierID int64
	orderID   int64

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a completion report. Both ids must be positive.
func NewCompleteOrderCommand(courierID, orderID int64) (CompleteOrderCommand, error) {
	var idErrs []error
	if courierID <= 0 {
		idErrs = append(idErrs, errs.NewValueIsInvalidErrorWithCause(
			"courier_id", fmt.Errorf("%d is not greater than 0", courierID),
		))
	}
	if orderID <= 0 {
		idErrs = append(idErrs, errs.NewValueIsInvalidErrorWithCause(
			"order_id", fmt.Errorf("%d is not greater than 0", orderID),
		))
	}
	if err := errors.Join(idErrs...); err != nil {
		return CompleteOrderCommand{}, err
	}

	return CompleteOrderCommand{
		courierID: courierID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// CourierID returns the reporting courier.
func (c CompleteOrderCommand) CourierID() int64 {
	return c.courierID
}

// OrderID returns the delivered order.
func (c CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}
