package commands

import (
	"context"
	"errors"

	"courierapi/internal/core/domain/model/courier"
	"courierapi/internal/core/domain/model/order"
	"courierapi/internal/core/domain/services"
)

// AssignOrdersCommandHandler assigns to a courier every candidate order it can carry.
//
// Candidates come from the order repository in the configured ordering. Each candidate
// that passes the time window test is assigned in its own transaction: the order row is
// updated with a compare-and-swap against "unassigned" and the order is appended to the
// courier's list. Only the list is written, so an update of the courier's attributes
// committed during the pass is kept. An order taken by a concurrent request in the
// meantime is skipped.
// Orders assigned before a failure stay assigned.
//
// Example:
//
//	handler := NewAssignOrdersCommandHandler(uowFactory, order.ByID, NopMetrics{})
//	cmd, _ := NewAssignOrdersCommand(5)
//	orderIDs, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown courier
//	}
type AssignOrdersCommandHandler struct {
	uowFactory UoWFactory
	filter     services.EligibilityFilter
	dispatcher services.OrderDispatcher
	metrics    Metrics
}

// NewAssignOrdersCommandHandler creates an assignment handler taking candidates in the
// given ordering.
func NewAssignOrdersCommandHandler(
	uowFactory UoWFactory,
	ordering order.Ordering,
	metrics Metrics,
) AssignOrdersCommandHandler {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return AssignOrdersCommandHandler{
		uowFactory: uowFactory,
		filter:     services.NewEligibilityFilter(ordering),
		dispatcher: services.NewOrderDispatcher(),
		metrics:    metrics,
	}
}

// Handle runs the assignment for the command's courier.
//
// Returns:
//   - []int64: the courier's full assigned list, earlier assignments first
//   - errs.ObjectNotFoundError: the courier does not exist
//   - errs.UnknownVehicleTypeError: the courier's vehicle type has no capacity
func (h AssignOrdersCommandHandler) Handle(ctx context.Context, cmd AssignOrdersCommand) ([]int64, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	reader := h.uowFactory.Create()
	c, err := reader.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	criteria, err := h.filter.Criteria(c)
	if err != nil {
		return nil, err
	}

	candidates, err := reader.OrderRepository().FindCandidates(ctx, criteria)
	if err != nil {
		return nil, err
	}

	assigned := 0
	for _, o := range candidates {
		if !services.Overlaps(c.WorkingHours(), o.DeliveryHours()) {
			continue
		}

		ok, assignErr := h.assignOne(ctx, c, o)
		if assignErr != nil {
			h.metrics.OrdersAssigned(assigned)
			return nil, assignErr
		}
		if ok {
			assigned++
		}
	}
	h.metrics.OrdersAssigned(assigned)

	return c.OrderIDs(), nil
}

// assignOne performs the per-order transaction. It reports false when the order was
// skipped because it is no longer eligible or another courier took it first.
func (h AssignOrdersCommandHandler) assignOne(ctx context.Context, c *courier.Courier, o *order.Order) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	err := h.dispatcher.Dispatch(c, o)
	if errors.Is(err, services.ErrOrderNotEligible) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	err = uow.OrderRepository().Assign(ctx, o)
	if errors.Is(err, order.ErrOrderAlreadyAssigned) {
		h.metrics.AssignmentConflict()
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = c.AcceptOrder(o.ID()); err != nil {
		return false, err
	}

	if err = uow.CourierRepository().AppendOrder(ctx, c.ID(), o.ID()); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
