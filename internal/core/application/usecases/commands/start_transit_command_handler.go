package commands

import (
	"context"
)

// StartTransitCommandHandler advances a collected delivery to in-progress.
// Invoked by the transit scheduler, never directly by an HTTP caller.
// A delivery deleted or already advanced between scheduling and firing
// surfaces as a not-found or invalid-state error; the scheduler treats
// both as a no-op.
type StartTransitCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewStartTransitCommandHandler creates a handler for transit transitions.
func NewStartTransitCommandHandler(uowFactory DeliveryUoWFactory) StartTransitCommandHandler {
	return StartTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the delivery from collected to in-progress status.
func (h StartTransitCommandHandler) Handle(ctx context.Context, command StartTransitCommand) error {
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

	transitDelivery, err := deliveryRepo.GetForUpdate(ctx, command.DeliveryID())
	if err != nil {
		return err
	}

	if err = transitDelivery.StartTransit(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, transitDelivery); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
