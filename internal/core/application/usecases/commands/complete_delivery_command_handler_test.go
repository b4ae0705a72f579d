package commands_test

import (
	"testing"
	"time"

	"deliveryconnect/internal/core/application/usecases/commands"
	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func inProgressDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d := collectedDelivery(t)
	require.NoError(t, d.StartTransit())
	return d
}

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testDelivery := inProgressDelivery(t)
	cmd, err := commands.NewCompleteDeliveryCommand(testDelivery.ID())
	require.NoError(t, err)

	earningBefore := testDelivery.MotoboyEarning()

	deliveryRepo := new(MockCreateDeliveryRepository)
	uow := new(MockTransitUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Completed, testDelivery.Status())
	assert.NotNil(t, testDelivery.CompletedAt())
	assert.InDelta(t, earningBefore, testDelivery.MotoboyEarning(), 0.0001)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()

	testDelivery := inProgressDelivery(t)
	require.NoError(t, testDelivery.Complete(time.Now()))
	firstCompletedAt := *testDelivery.CompletedAt()

	cmd, err := commands.NewCompleteDeliveryCommand(testDelivery.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockCreateDeliveryRepository)
	uow := new(MockTransitUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetForUpdate", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, firstCompletedAt, *testDelivery.CompletedAt())
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
