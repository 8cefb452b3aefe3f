package cmd

import (
	"courierapi/internal/adapters/in/http"
	"courierapi/internal/adapters/out/postgres"
	"courierapi/internal/core/application/usecases/commands"
	"courierapi/internal/core/application/usecases/queries"
	"courierapi/internal/core/domain/model/order"
	"courierapi/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB            *gorm.DB
	uowFactory        *postgres.GormUnitOfWorkFactory
	ordering          order.Ordering
	assignmentMetrics *metrics.Assignment
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, reg prometheus.Registerer) CompositionRoot {
	return CompositionRoot{
		gormDB:            gormDB,
		uowFactory:        postgres.NewGormUnitOfWorkFactory(gormDB),
		ordering:          cfg.Ordering(),
		assignmentMetrics: metrics.NewAssignment(reg),
	}
}

func (c *CompositionRoot) CreateCreateCouriersCommandHandler() commands.CreateCouriersCommandHandler {
	return commands.NewCreateCouriersCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCourierCommandHandler() commands.UpdateCourierCommandHandler {
	return commands.NewUpdateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrdersCommandHandler() commands.CreateOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrdersCommandHandler() commands.AssignOrdersCommandHandler {
	return commands.NewAssignOrdersCommandHandler(c.unitOfWorkFactory(), c.ordering, c.assignmentMetrics)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.unitOfWorkFactory(), c.assignmentMetrics)
}

func (c *CompositionRoot) CreateSweepAssignmentsCommandHandler() commands.SweepAssignmentsCommandHandler {
	return commands.NewSweepAssignmentsCommandHandler(c.unitOfWorkFactory(), c.CreateAssignOrdersCommandHandler())
}

func (c *CompositionRoot) CreateGetCourierQueryHandler() queries.GetCourierQueryHandler {
	return queries.NewGetCourierQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCouriersQueryHandler() queries.ListCouriersQueryHandler {
	return queries.NewListCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

// HTTPHandlers wires every use case served by the public API.
func (c *CompositionRoot) HTTPHandlers() http.Handlers {
	return http.Handlers{
		CreateCouriers:       c.CreateCreateCouriersCommandHandler(),
		UpdateCourier:        c.CreateUpdateCourierCommandHandler(),
		GetCourier:           c.CreateGetCourierQueryHandler(),
		ListCouriers:         c.CreateListCouriersQueryHandler(),
		CreateOrders:         c.CreateCreateOrdersCommandHandler(),
		AssignOrders:         c.CreateAssignOrdersCommandHandler(),
		CompleteOrder:        c.CreateCompleteOrderCommandHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetUncompletedOrders: c.CreateGetUncompletedOrdersQueryHandler(),
	}
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) unitOfWorkFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
