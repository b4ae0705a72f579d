package commands

import (
	"context"

	"deliveryconnect/internal/core/ports"
)

// RefreshCourierLocationsCommandHandler samples fresh positions for every
// online courier and fans them out to both persistence and the live feed.
// The stored position feeds distance ranking; the feed entry feeds tracking
// views and expires on its own if refreshes stop.
type RefreshCourierLocationsCommandHandler struct {
	uowFactory CourierUoWFactory
	provider   ports.PositionProvider
	feed       ports.LocationFeed
}

// NewRefreshCourierLocationsCommandHandler creates a handler for the periodic
// position refresh.
func NewRefreshCourierLocationsCommandHandler(
	uowFactory CourierUoWFactory,
	provider ports.PositionProvider,
	feed ports.LocationFeed,
) RefreshCourierLocationsCommandHandler {
	return RefreshCourierLocationsCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
		feed:       feed,
	}
}

// Handle refreshes every online courier's position.
// All position updates commit in one transaction; feed publication happens
// after the commit so the feed never runs ahead of the stored state.
func (h RefreshCourierLocationsCommandHandler) Handle(
	ctx context.Context,
	command RefreshCourierLocationsCommand,
) error {
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

	couriers, err := courierRepo.GetAllOnline(ctx)
	if err != nil {
		return err
	}

	for _, onlineCourier := range couriers {
		position, err := h.provider.CurrentPosition(ctx, onlineCourier.ID())
		if err != nil {
			return err
		}

		if err = onlineCourier.UpdatePosition(position); err != nil {
			return err
		}

		if err = courierRepo.Update(ctx, onlineCourier); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, onlineCourier := range couriers {
		if position := onlineCourier.Position(); position != nil {
			if err = h.feed.Publish(ctx, onlineCourier.ID(), *position); err != nil {
				return err
			}
		}
	}

	return nil
}
