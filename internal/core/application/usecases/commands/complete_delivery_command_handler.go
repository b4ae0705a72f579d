package commands

import (
	"context"
	"time"
)

// CompleteDeliveryCommandHandler finalizes a delivery.
// Completed is a terminal state; a repeated completion attempt fails with an
// invalid-state error and leaves the stored record untouched.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the delivery from in-progress to completed status and records
// the completion timestamp. The courier earning was fixed at creation and is
// not recomputed here.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	completedDelivery, err := deliveryRepo.GetForUpdate(ctx, command.DeliveryID())
	if err != nil {
		return err
	}

	if err = completedDelivery.Complete(time.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, completedDelivery); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
