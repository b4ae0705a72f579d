package commands

import (
	"context"
	"time"
)

// CollectDeliveryCommandHandler processes the handoff scan.
// Loads the delivery and the courier with row locks so two couriers scanning
// the same code serialize on the delivery row and exactly one claim wins.
// The loser observes a collected delivery and fails with an invalid-state error.
//
// Example:
//
//	handler := NewCollectDeliveryCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	var stateErr *errs.InvalidStateError
//	if errors.As(err, &stateErr) {
//	    // someone else collected it first
//	}
type CollectDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCollectDeliveryCommandHandler creates a handler for handoff scan claims.
// Requires a UoWFactory because the claim updates both the delivery and the
// courier's delivery counter in one transaction.
func NewCollectDeliveryCommandHandler(uowFactory UoWFactory) CollectDeliveryCommandHandler {
	return CollectDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle claims the delivery for the courier.
// The delivery moves to collected status with the courier identity attached,
// and the courier's total delivery counter is incremented. Both updates commit
// atomically or not at all.
func (h CollectDeliveryCommandHandler) Handle(ctx context.Context, command CollectDeliveryCommand) error {
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
	courierRepo := uow.CourierRepository()

	claimedDelivery, err := deliveryRepo.GetForUpdate(ctx, command.DeliveryID())
	if err != nil {
		return err
	}

	claimingCourier, err := courierRepo.GetForUpdate(ctx, command.CourierID())
	if err != nil {
		return err
	}

	err = claimedDelivery.Collect(
		command.CourierID(),
		command.CourierName(),
		command.CourierPhone(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	claimingCourier.RecordDelivery()

	if err = deliveryRepo.Update(ctx, claimedDelivery); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, claimingCourier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
