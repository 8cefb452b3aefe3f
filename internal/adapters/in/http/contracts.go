package http

import (
	"context"

	"courierapi/internal/core/application/usecases/commands"
	"courierapi/internal/core/application/usecases/queries"
)

// Use case contracts consumed by the HTTP layer. The command and query handlers of the
// application layer satisfy them.
type (
	CreateCouriersHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCouriersCommand) ([]int64, error)
	}

	UpdateCourierHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCourierCommand) error
	}

	CreateOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrdersCommand) ([]int64, error)
	}

	AssignOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.AssignOrdersCommand) ([]int64, error)
	}

	CompleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) (commands.CompletionResult, error)
	}

	GetCourierHandler interface {
		Handle(ctx context.Context, query queries.GetCourierQuery) (queries.CourierResponse, error)
	}

	ListCouriersHandler interface {
		Handle(ctx context.Context, query queries.ListCouriersQuery) ([]queries.CourierResponse, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}

	GetUncompletedOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetUncompletedOrdersQuery) ([]queries.OrderResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateCouriers       CreateCouriersHandler
	UpdateCourier        UpdateCourierHandler
	GetCourier           GetCourierHandler
	ListCouriers         ListCouriersHandler
	CreateOrders         CreateOrdersHandler
	AssignOrders         AssignOrdersHandler
	CompleteOrder        CompleteOrderHandler
	GetOrder             GetOrderHandler
	GetUncompletedOrders GetUncompletedOrdersHandler
}
