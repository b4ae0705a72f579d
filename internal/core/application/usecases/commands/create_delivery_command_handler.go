package commands

import (
	"context"
	"time"

	"deliveryconnect/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler persists new delivery requests.
// Derives the delivery identifier from the creation instant, so two requests
// registered in the same millisecond share an identifier and the second insert
// fails on the primary key. Callers should retry in that case.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery registration.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers a new pending delivery and returns the created aggregate.
// The returned delivery carries the derived identifier, the computed courier
// earning and the creation timestamp needed to render the handoff code.
func (h CreateDeliveryCommandHandler) Handle(
	ctx context.Context,
	command CreateDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	deliveryID := delivery.NewID(now)

	newDelivery, err := delivery.NewDelivery(
		deliveryID,
		command.CommerceID(),
		command.CommerceName(),
		command.Address(),
		command.Description(),
		command.Value(),
		now,
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

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newDelivery, nil
}
