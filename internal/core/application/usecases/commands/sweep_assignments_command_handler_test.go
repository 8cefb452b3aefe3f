package commands_test

import (
	"errors"
	"testing"

	"courierapi/internal/core/application/usecases/commands"
	"courierapi/internal/core/domain/model/courier"
	"courierapi/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSweepAssignmentsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	store := newMemoryStore()
	seedCourier(t, store, mustCourier(t, 1, courier.Foot, []int{1}, "09:00-12:00"))
	seedCourier(t, store, mustCourier(t, 2, courier.Car, []int{1, 2}, "09:00-18:00"))
	plane, err := courier.RestoreCourier(3, "plane", []int{1}, mustWindows(t, "09:00-18:00"), nil)
	require.NoError(t, err)
	seedCourier(t, store, plane)
	seedOrders(t, store,
		mustOrder(t, 10, 5, 1, "10:00-11:00"),
		mustOrder(t, 11, 40, 1, "10:00-11:00"),
		mustOrder(t, 12, 5, 2, "15:00-16:00"),
	)

	assign := commands.NewAssignOrdersCommandHandler(store, order.ByID, nil)
	h := commands.NewSweepAssignmentsCommandHandler(store, assign)

	visited, err := h.Handle(ctx, commands.NewSweepAssignmentsCommand())

	require.NoError(t, err)
	assert.Equal(t, 2, visited)

	repo := store.Create().CourierRepository()
	first, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, first.OrderIDs())
	second, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{11, 12}, second.OrderIDs())
}

func TestSweepAssignmentsCommandHandler_Handle_ListError(t *testing.T) {
	ctx := t.Context()
	repo := new(MockCourierRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("ListIDs", ctx).Return(nil, errors.New("db down")).Once(),
	)

	assign := commands.NewAssignOrdersCommandHandler(factory, order.ByID, nil)
	h := commands.NewSweepAssignmentsCommandHandler(factory, assign)

	_, err := h.Handle(ctx, commands.NewSweepAssignmentsCommand())

	require.EqualError(t, err, "db down")
}

func TestSweepAssignmentsCommandHandler_Handle_InvalidCommand(t *testing.T) {
	h := commands.NewSweepAssignmentsCommandHandler(new(MockUoWFactory), commands.AssignOrdersCommandHandler{})

	_, err := h.Handle(t.Context(), commands.SweepAssignmentsCommand{})

	require.ErrorIs(t, err, commands.ErrSweepAssignmentsCommandIsNotConstructed)
}
