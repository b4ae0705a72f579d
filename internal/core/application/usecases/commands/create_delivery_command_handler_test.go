package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"deliveryconnect/internal/core/application/usecases/commands"
	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/core/domain/model/kernel"
	"deliveryconnect/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateDeliveryRepository struct{ mock.Mock }

func (m *MockCreateDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockCreateDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockCreateDeliveryRepository) Get(ctx context.Context, id delivery.ID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockCreateDeliveryRepository) GetForUpdate(ctx context.Context, id delivery.ID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockCreateDeliveryRepository) GetByCommerce(
	ctx context.Context,
	commerceID kernel.UUID,
) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, commerceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockCreateDeliveryRepository) GetByCourier(
	ctx context.Context,
	courierID kernel.UUID,
) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockCreateDeliveryUoW struct{ mock.Mock }

func (m *MockCreateDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockCreateDeliveryUoWFactory struct{ mock.Mock }

func (m *MockCreateDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), "Pizza Hub", "Av. Paulista 1000", "2x pizza", 50)
	require.NoError(t, err)

	deliveryRepo := new(MockCreateDeliveryRepository)
	uow := new(MockCreateDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, strings.HasPrefix(created.ID().String(), "DEL-"))
	assert.Equal(t, delivery.Pending, created.Status())
	assert.InDelta(t, 35.0, created.MotoboyEarning(), 0.0001)

	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDeliveryCommand{} // not constructed properly

	factory := new(MockCreateDeliveryUoWFactory)
	handler := commands.NewCreateDeliveryCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateDeliveryCommandIsNotConstructed)
	assert.Nil(t, created)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateDeliveryCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), "Pizza Hub", "Av. Paulista 1000", "", 50)
	require.NoError(t, err)

	deliveryRepo := new(MockCreateDeliveryRepository)
	uow := new(MockCreateDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).
			Return(errors.New("duplicate key")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "duplicate key")
	assert.Nil(t, created)
}

func TestCreateDeliveryCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), "Pizza Hub", "Av. Paulista 1000", "", 50)
	require.NoError(t, err)

	deliveryRepo := new(MockCreateDeliveryRepository)
	uow := new(MockCreateDeliveryUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDeliveryCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	assert.Nil(t, created)
}
