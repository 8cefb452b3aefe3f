package commands

import (
	"context"
	"errors"
	"fmt"

	"courierapi/internal/core/domain/model/courier"
	"courierapi/internal/core/domain/model/kernel"
	"courierapi/internal/pkg/errs"
)

// CreateCouriersCommandHandler validates and stores a batch of couriers in one transaction.
//
// Example:
//
//	handler := NewCreateCouriersCommandHandler(uowFactory)
//	ids, err := handler.Handle(ctx, cmd)
//	var invalid *errs.InvalidItemsError
//	if errors.As(err, &invalid) {
//	    // report invalid.IDs to the client
//	}
type CreateCouriersCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCouriersCommandHandler creates a handler for courier imports.
func NewCreateCouriersCommandHandler(uowFactory CourierUoWFactory) CreateCouriersCommandHandler {
	return CreateCouriersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds every courier of the batch and stores them.
//
// Returns:
//   - []int64: ids of the stored couriers, in request order
//   - *errs.InvalidItemsError: when any item is invalid, a duplicate within the batch, or
//     already stored; nothing is stored in that case
func (h CreateCouriersCommandHandler) Handle(ctx context.Context, cmd CreateCouriersCommand) ([]int64, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	couriers, err := buildCouriers(cmd.Items())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	ids := make([]int64, 0, len(couriers))
	for _, c := range couriers {
		if err = courierRepo.Add(ctx, c); err != nil {
			if errors.Is(err, errs.ErrValueIsInvalid) {
				return nil, errs.NewInvalidItemsError("couriers", []int64{c.ID()}, err)
			}
			return nil, err
		}
		ids = append(ids, c.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}

func buildCouriers(items []CourierItem) ([]*courier.Courier, error) {
	var (
		couriers   = make([]*courier.Courier, 0, len(items))
		invalidIDs []int64
		causes     []error
		seen       = make(map[int64]struct{}, len(items))
	)

	for _, item := range items {
		c, err := buildCourier(item)
		if err == nil {
			if _, dup := seen[item.ID]; dup {
				err = errs.NewValueIsInvalidErrorWithCause("courier_id", fmt.Errorf("%d is duplicated", item.ID))
			}
		}
		if err != nil {
			invalidIDs = append(invalidIDs, item.ID)
			causes = append(causes, fmt.Errorf("courier %d: %w", item.ID, err))
			continue
		}
		seen[item.ID] = struct{}{}
		couriers = append(couriers, c)
	}

	if len(invalidIDs) > 0 {
		return nil, errs.NewInvalidItemsError("couriers", invalidIDs, errors.Join(causes...))
	}

	return couriers, nil
}

func buildCourier(item CourierItem) (*courier.Courier, error) {
	hours, err := kernel.ParseTimeWindows(item.WorkingHours)
	if err != nil {
		return nil, err
	}
	return courier.NewCourier(item.ID, courier.VehicleType(item.VehicleType), item.Regions, hours)
}
