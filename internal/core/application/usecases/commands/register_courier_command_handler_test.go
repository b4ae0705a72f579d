package commands_test

import (
	"context"
	"errors"
	"testing"

	"deliveryconnect/internal/core/application/usecases/commands"
	"deliveryconnect/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRegisterCourierUoW struct{ mock.Mock }

func (m *MockRegisterCourierUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegisterCourierUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegisterCourierUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegisterCourierUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockRegisterCourierUoWFactory struct{ mock.Mock }

func (m *MockRegisterCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

func TestRegisterCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRegisterCourierCommand("John Doe", "+5511999990000", "Honda CG 160", "ABC-1234")
	require.NoError(t, err)

	courierRepo := new(MockCollectCourierRepository)
	uow := new(MockRegisterCourierUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Add", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegisterCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCourierCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "John Doe", created.Name())
	assert.False(t, created.IsOnline())
	assert.Nil(t, created.Position())
	assert.Equal(t, 0, created.TotalDeliveries())

	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterCourierCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterCourierCommand{} // not constructed properly

	factory := new(MockRegisterCourierUoWFactory)
	handler := commands.NewRegisterCourierCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterCourierCommandIsNotConstructed)
	assert.Nil(t, created)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterCourierCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRegisterCourierCommand("John Doe", "+5511999990000", "", "")
	require.NoError(t, err)

	courierRepo := new(MockCollectCourierRepository)
	uow := new(MockRegisterCourierUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Add", ctx, mock.AnythingOfType("*courier.Courier")).
			Return(errors.New("insert error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegisterCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCourierCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "insert error")
	assert.Nil(t, created)
}
