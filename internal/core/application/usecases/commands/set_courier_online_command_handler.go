package commands

import (
	"context"

	"deliveryconnect/internal/core/ports"
)

// SetCourierOnlineCommandHandler toggles courier availability.
// Going offline also drops the courier's live-location entry so tracking
// views stop showing a stale position immediately. Going online publishes
// the last known position, if any; the location job refreshes it shortly.
type SetCourierOnlineCommandHandler struct {
	uowFactory CourierUoWFactory
	feed       ports.LocationFeed
}

// NewSetCourierOnlineCommandHandler creates a handler for availability toggles.
func NewSetCourierOnlineCommandHandler(
	uowFactory CourierUoWFactory,
	feed ports.LocationFeed,
) SetCourierOnlineCommandHandler {
	return SetCourierOnlineCommandHandler{
		uowFactory: uowFactory,
		feed:       feed,
	}
}

// Handle persists the availability change and synchronizes the location feed.
// The feed is touched only after the database change commits, so a failed
// toggle never leaves the feed out of step with the stored state.
func (h SetCourierOnlineCommandHandler) Handle(ctx context.Context, command SetCourierOnlineCommand) error {
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

	courierRepo := uow.CourierRepository()

	toggledCourier, err := courierRepo.GetForUpdate(ctx, command.CourierID())
	if err != nil {
		return err
	}

	toggledCourier.SetOnline(command.Online())

	if err = courierRepo.Update(ctx, toggledCourier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if !command.Online() {
		return h.feed.Drop(ctx, command.CourierID())
	}

	if position := toggledCourier.Position(); position != nil {
		return h.feed.Publish(ctx, command.CourierID(), *position)
	}

	return nil
}
