package commands

import (
	"context"
	"errors"
	"fmt"

	"courierapi/internal/core/domain/model/kernel"
	"courierapi/internal/core/domain/model/order"
	"courierapi/internal/pkg/errs"
)

// CreateOrdersCommandHandler validates a batch of orders and stores it with a single
// AddMany call.
//
// Example:
//
//	handler := NewCreateOrdersCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrdersCommand([]OrderItem{
//	    {ID: 42, Weight: 2.5, Region: 1, DeliveryHours: []string{"10:00-11:00"}},
//	})
//	ids, err := handler.Handle(ctx, cmd)
type CreateOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrdersCommandHandler creates a handler for order imports.
func NewCreateOrdersCommandHandler(uowFactory OrderUoWFactory) CreateOrdersCommandHandler {
	return CreateOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds every order of the batch in Created status and stores them.
// Returns *errs.InvalidItemsError listing every rejected id when any item is invalid.
func (h CreateOrdersCommandHandler) Handle(ctx context.Context, cmd CreateOrdersCommand) ([]int64, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orders, err := buildOrders(cmd.Items())
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

	if err = uow.OrderRepository().AddMany(ctx, orders); err != nil {
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return nil, errs.NewInvalidItemsError("orders", orderIDs(orders), err)
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderIDs(orders), nil
}

func buildOrders(items []OrderItem) ([]*order.Order, error) {
	var (
		orders     = make([]*order.Order, 0, len(items))
		invalidIDs []int64
		causes     []error
		seen       = make(map[int64]struct{}, len(items))
	)

	for _, item := range items {
		o, err := buildOrder(item)
		if err == nil {
			if _, dup := seen[item.ID]; dup {
				err = errs.NewValueIsInvalidErrorWithCause("order_id", fmt.Errorf("%d is duplicated", item.ID))
			}
		}
		if err != nil {
			invalidIDs = append(invalidIDs, item.ID)
			causes = append(causes, fmt.Errorf("order %d: %w", item.ID, err))
			continue
		}
		seen[item.ID] = struct{}{}
		orders = append(orders, o)
	}

	if len(invalidIDs) > 0 {
		return nil, errs.NewInvalidItemsError("orders", invalidIDs, errors.Join(causes...))
	}

	return orders, nil
}

func buildOrder(item OrderItem) (*order.Order, error) {
	hours, err := kernel.ParseTimeWindows(item.DeliveryHours)
	if err != nil {
		return nil, err
	}
	return order.NewOrder(item.ID, item.Weight, item.Region, hours)
}

func orderIDs(orders []*order.Order) []int64 {
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids
}
