package commands_test

import (
	"errors"
	"testing"

	"courierapi/internal/core/application/usecases/commands"
	"courierapi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCourierItems() []commands.CourierItem {
	return []commands.CourierItem{
		{ID: 1, VehicleType: "foot", Regions: []int{1}, WorkingHours: []string{"11:35-14:05", "09:00-11:00"}},
		{ID: 2, VehicleType: "bike", Regions: []int{22}, WorkingHours: []string{"09:00-18:00"}},
		{ID: 3, VehicleType: "car", Regions: []int{12, 22, 23, 33}, WorkingHours: []string{}},
	}
}

func TestCreateCouriersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	items := validCourierItems()[:2]
	cmd, err := commands.NewCreateCouriersCommand(items)
	require.NoError(t, err)

	repo := new(MockCourierRepository)
	uow := new(MockUoW)
	factory := new(MockCourierUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateCouriersCommandHandler(factory)
	ids, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateCouriersCommandHandler_Handle_InvalidItems(t *testing.T) {
	items := append(validCourierItems(),
		commands.CourierItem{ID: 4, VehicleType: "plane", Regions: []int{1}, WorkingHours: []string{"09:00-18:00"}},
		commands.CourierItem{ID: 5, VehicleType: "bike", Regions: []int{1}, WorkingHours: []string{"9-18"}},
		commands.CourierItem{ID: 1, VehicleType: "bike", Regions: []int{1}, WorkingHours: []string{"09:00-18:00"}},
	)
	cmd, _ := commands.NewCreateCouriersCommand(items)
	factory := new(MockCourierUoWFactory)

	h := commands.NewCreateCouriersCommandHandler(factory)
	ids, err := h.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.Nil(t, ids)
	var invalid *errs.InvalidItemsError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "couriers", invalid.Collection)
	assert.Equal(t, []int64{3, 4, 5, 1}, invalid.IDs)
	assert.ErrorIs(t, invalid.Cause, errs.ErrUnknownVehicleType)
	assert.ErrorIs(t, invalid.Cause, errs.ErrMalformedInterval)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCouriersCommandHandler_Handle_AlreadyStored(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateCouriersCommand(validCourierItems()[:1])

	repo := new(MockCourierRepository)
	uow := new(MockUoW)
	factory := new(MockCourierUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CourierRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(errs.NewValueIsInvalidError("courier_id")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateCouriersCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	var invalid *errs.InvalidItemsError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, []int64{1}, invalid.IDs)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateCouriersCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateCouriersCommand(validCourierItems()[:1])

	uow := new(MockUoW)
	factory := new(MockCourierUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateCouriersCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestNewCreateCouriersCommand_Empty(t *testing.T) {
	_, err := commands.NewCreateCouriersCommand(nil)

	require.ErrorIs(t, err, commands.ErrCouriersAreRequired)
}
