package commands

import (
	"context"

	"deliveryconnect/internal/core/domain/model/courier"
	"deliveryconnect/internal/core/domain/model/kernel"
)

// RegisterCourierCommandHandler persists newly enrolled couriers.
type RegisterCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewRegisterCourierCommandHandler creates a handler for courier registration.
func NewRegisterCourierCommandHandler(uowFactory CourierUoWFactory) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the courier aggregate with a fresh identifier and stores it.
// Returns the created courier so callers can hand the identifier back to the client.
func (h RegisterCourierCommandHandler) Handle(
	ctx context.Context,
	command RegisterCourierCommand,
) (*courier.Courier, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	newCourier, err := courier.NewCourier(
		kernel.NewUUID(),
		command.Name(),
		command.Phone(),
		command.VehicleModel(),
		command.LicensePlate(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, newCourier); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newCourier, nil
}
