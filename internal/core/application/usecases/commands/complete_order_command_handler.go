package commands

import (
	"context"
	"time"

	"courierapi/internal/core/domain/model/order"
)

// CompletionResult describes a successful completion.
type CompletionResult struct {
	CourierID   int64
	OrderID     int64
	CompletedAt time.Time
}

// CompleteOrderCommandHandler moves an order assigned to the reporting courier to Completed.
//
// Example:
//
//	cmd, _ := NewCompleteOrderCommand(5, 42)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrAssignmentMismatch) {
//	    // order 42 belongs to another courier or to nobody
//	}
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	metrics    Metrics
	now        func() time.Time
}

// NewCompleteOrderCommandHandler creates a completion handler.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory, metrics Metrics) CompleteOrderCommandHandler {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		metrics:    metrics,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle completes the order.
//
// The checks run in this order: the order exists, it is assigned to the courier, the
// courier exists. Completing an order twice by its owner returns the first completion
// without touching storage.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (CompletionResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompletionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CompletionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return CompletionResult{}, err
	}

	alreadyCompleted := o.Status() == order.Completed
	if err = o.Complete(cmd.CourierID(), h.now()); err != nil {
		return CompletionResult{}, err
	}

	if _, err = uow.CourierRepository().Get(ctx, cmd.CourierID()); err != nil {
		return CompletionResult{}, err
	}

	result := CompletionResult{
		CourierID: cmd.CourierID(),
		OrderID:   o.ID(),
	}
	if at := o.CompletedAt(); at != nil {
		result.CompletedAt = *at
	}

	if alreadyCompleted {
		return result, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return CompletionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CompletionResult{}, err
	}

	h.metrics.DeliveryCompleted()
	return result, nil
}
