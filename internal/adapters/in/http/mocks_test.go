package http_test

import (
	"context"

	"courierapi/internal/core/application/usecases/commands"
	"courierapi/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockCreateCouriers struct{ mock.Mock }

func (m *MockCreateCouriers) Handle(ctx context.Context, cmd commands.CreateCouriersCommand) ([]int64, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockUpdateCourier struct{ mock.Mock }

func (m *MockUpdateCourier) Handle(ctx context.Context, cmd commands.UpdateCourierCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockCreateOrders struct{ mock.Mock }

func (m *MockCreateOrders) Handle(ctx context.Context, cmd commands.CreateOrdersCommand) ([]int64, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockAssignOrders struct{ mock.Mock }

func (m *MockAssignOrders) Handle(ctx context.Context, cmd commands.AssignOrdersCommand) ([]int64, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockCompleteOrder struct{ mock.Mock }

func (m *MockCompleteOrder) Handle(
	ctx context.Context,
	cmd commands.CompleteOrderCommand,
) (commands.CompletionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CompletionResult), args.Error(1)
}

type MockGetCourier struct{ mock.Mock }

func (m *MockGetCourier) Handle(ctx context.Context, query queries.GetCourierQuery) (queries.CourierResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.CourierResponse), args.Error(1)
}

type MockListCouriers struct{ mock.Mock }

func (m *MockListCouriers) Handle(
	ctx context.Context,
	query queries.ListCouriersQuery,
) ([]queries.CourierResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.CourierResponse), args.Error(1)
}

type MockGetOrder struct{ mock.Mock }

func (m *MockGetOrder) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderResponse), args.Error(1)
}

type MockGetUncompletedOrders struct{ mock.Mock }

func (m *MockGetUncompletedOrders) Handle(
	ctx context.Context,
	query queries.GetUncompletedOrdersQuery,
) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderResponse), args.Error(1)
}
