package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "courierapi/internal/adapters/out/postgres"
	"courierapi/internal/adapters/out/postgres/courierrepo"
	"courierapi/internal/adapters/out/postgres/orderrepo"
	"courierapi/internal/core/application/usecases/queries"
	"courierapi/internal/core/domain/model/courier"
	"courierapi/internal/core/domain/model/kernel"
	"courierapi/internal/core/domain/model/order"
	"courierapi/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(int64, any) {}

// QueryHandlersTestSuite runs all read-side handlers against rows written by the
// repositories, so that the raw SQL stays in step with the DTO schema.
type QueryHandlersTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	courierRepo *courierrepo.GormCourierRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(dsn, postgres_adapter.DefaultOptions())
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.courierRepo = courierrepo.NewGormCourierRepository(db, &mockAggregateTracker{})
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(postgres_adapter.Truncate(suite.db))
}

func (suite *QueryHandlersTestSuite) TestGetCourier_ReturnsAttributesAndOrdersInAssignmentOrder() {
	ctx := context.Background()
	c := suite.addCourier(1, courier.Bike, []int{1, 12}, "09:00-11:00", "14:00-18:00")
	for _, orderID := range []int64{20, 3, 11} {
		suite.Require().NoError(c.AcceptOrder(orderID))
	}
	suite.Require().NoError(suite.courierRepo.Update(ctx, c))

	query, err := queries.NewGetCourierQuery(1)
	suite.Require().NoError(err)

	resp, err := queries.NewGetCourierQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(queries.CourierResponse{
		ID:           1,
		VehicleType:  "bike",
		Regions:      []int{1, 12},
		WorkingHours: []string{"09:00-11:00", "14:00-18:00"},
		OrderIDs:     []int64{20, 3, 11},
	}, resp)
}

func (suite *QueryHandlersTestSuite) TestGetCourier_NoOrders_ReturnsEmptyList() {
	suite.addCourier(2, courier.Foot, []int{1}, "10:00-12:00")

	query, err := queries.NewGetCourierQuery(2)
	suite.Require().NoError(err)

	resp, err := queries.NewGetCourierQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(resp.OrderIDs)
	suite.Empty(resp.OrderIDs)
}

func (suite *QueryHandlersTestSuite) TestGetCourier_NotFound() {
	query, err := queries.NewGetCourierQuery(404)
	suite.Require().NoError(err)

	_, err = queries.NewGetCourierQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetCourier_NotConstructedQuery() {
	_, err := queries.NewGetCourierQueryHandler(suite.db).Handle(context.Background(), queries.GetCourierQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetCourierQueryIsNotConstructed)
}

func (suite *QueryHandlersTestSuite) TestListCouriers_Pages() {
	for id := int64(1); id <= 5; id++ {
		suite.addCourier(id, courier.Car, []int{1}, "10:00-12:00")
	}
	handler := queries.NewListCouriersQueryHandler(suite.db)

	testCases := []struct {
		name     string
		offset   int
		limit    int
		expected []int64
	}{
		{name: "first page", offset: 0, limit: 2, expected: []int64{1, 2}},
		{name: "middle page", offset: 2, limit: 2, expected: []int64{3, 4}},
		{name: "last page", offset: 4, limit: 2, expected: []int64{5}},
		{name: "past the end", offset: 10, limit: 2, expected: []int64{}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			query, err := queries.NewListCouriersQuery(tc.offset, tc.limit)
			suite.Require().NoError(err)

			page, err := handler.Handle(context.Background(), query)
			suite.Require().NoError(err)
			suite.NotNil(page)

			ids := make([]int64, 0, len(page))
			for _, c := range page {
				ids = append(ids, c.ID)
			}
			suite.Equal(tc.expected, ids)
		})
	}
}

func (suite *QueryHandlersTestSuite) TestGetOrder_ReturnsLifecycleFields() {
	ctx := context.Background()
	o := suite.addOrder(7, 4.5, 2)

	query, err := queries.NewGetOrderQuery(7)
	suite.Require().NoError(err)
	handler := queries.NewGetOrderQueryHandler(suite.db)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("created", resp.Status)
	suite.Nil(resp.CourierID)
	suite.Nil(resp.CompletedAt)
	suite.Equal([]string{"10:00-12:00"}, resp.DeliveryHours)

	completedAt := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	suite.Require().NoError(o.Assign(3))
	suite.Require().NoError(suite.orderRepo.Assign(ctx, o))
	suite.Require().NoError(o.Complete(3, completedAt))
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))

	resp, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("completed", resp.Status)
	suite.Require().NotNil(resp.CourierID)
	suite.Equal(int64(3), *resp.CourierID)
	suite.Require().NotNil(resp.CompletedAt)
	suite.True(completedAt.Equal(*resp.CompletedAt))
}

func (suite *QueryHandlersTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(404)
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetUncompletedOrders_ExcludesCompleted() {
	ctx := context.Background()
	suite.addOrder(1, 1, 1)
	assigned := suite.addOrder(2, 1, 1)
	completed := suite.addOrder(3, 1, 1)

	suite.Require().NoError(assigned.Assign(9))
	suite.Require().NoError(suite.orderRepo.Assign(ctx, assigned))
	suite.Require().NoError(completed.Assign(9))
	suite.Require().NoError(suite.orderRepo.Assign(ctx, completed))
	suite.Require().NoError(completed.Complete(9, time.Now()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, completed))

	resp, err := queries.NewGetUncompletedOrdersQueryHandler(suite.db).Handle(ctx, queries.NewGetUncompletedOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(resp, 2)
	suite.Equal(int64(1), resp[0].ID)
	suite.Equal("created", resp[0].Status)
	suite.Equal(int64(2), resp[1].ID)
	suite.Equal("assigned", resp[1].Status)
}

func (suite *QueryHandlersTestSuite) TestGetUncompletedOrders_Empty() {
	resp, err := queries.NewGetUncompletedOrdersQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetUncompletedOrdersQuery())
	suite.Require().NoError(err)
	suite.NotNil(resp)
	suite.Empty(resp)
}

func (suite *QueryHandlersTestSuite) addCourier(
	id int64,
	vt courier.VehicleType,
	regions []int,
	hours ...string,
) *courier.Courier {
	windows, err := kernel.ParseTimeWindows(hours)
	suite.Require().NoError(err)
	c, err := courier.NewCourier(id, vt, regions, windows)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.courierRepo.Add(context.Background(), c))
	return c
}

func (suite *QueryHandlersTestSuite) addOrder(id int64, weight float64, region int) *order.Order {
	windows, err := kernel.ParseTimeWindows([]string{"10:00-12:00"})
	suite.Require().NoError(err)
	o, err := order.NewOrder(id, weight, region, windows)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
