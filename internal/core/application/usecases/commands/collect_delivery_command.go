package commands

import (
	"errors"

	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/core/domain/model/kernel"
	"deliveryconnect/internal/pkg/errs"
	"deliveryconnect/internal/pkg/guard"
)

var ErrCollectDeliveryCommandIsNotConstructed = errors.New(
	"CollectDeliveryCommand must be created via NewCollectDeliveryCommand constructor",
)

// CollectDeliveryCommand claims a pending delivery for a courier.
// Issued when a courier scans the handoff code at the commerce counter.
// The courier identity travels with the command so the delivery record keeps
// a snapshot of who collected it even if the courier profile changes later.
type CollectDeliveryCommand struct {
	deliveryID   delivery.ID
	courierID    kernel.UUID
	courierName  string
	courierPhone string

	guard guard.ConstructorGuard
}

// NewCollectDeliveryCommand creates a validated command to claim a delivery.
func NewCollectDeliveryCommand(
	deliveryID delivery.ID,
	courierID kernel.UUID,
	courierName string,
	courierPhone string,
) (CollectDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return CollectDeliveryCommand{}, errs.NewValueIsRequiredErrorWithCause("deliveryID", err)
	}
	if err := courierID.Validate(); err != nil {
		return CollectDeliveryCommand{}, errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}
	if courierName == "" {
		return CollectDeliveryCommand{}, errs.NewValueIsRequiredError("courierName")
	}

	return CollectDeliveryCommand{
		deliveryID:   deliveryID,
		courierID:    courierID,
		courierName:  courierName,
		courierPhone: courierPhone,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the identifier of the delivery being claimed.
func (c *CollectDeliveryCommand) DeliveryID() delivery.ID {
	return c.deliveryID
}

// CourierID returns the identifier of the claiming courier.
func (c *CollectDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// CourierName returns the claiming courier's display name.
func (c *CollectDeliveryCommand) CourierName() string {
	return c.courierName
}

// CourierPhone returns the claiming courier's contact phone.
func (c *CollectDeliveryCommand) CourierPhone() string {
	return c.courierPhone
}

// Validate ensures the command was created through the constructor.
// Returns ErrCollectDeliveryCommandIsNotConstructed if validation fails.
func (c *CollectDeliveryCommand) Validate() error {
	return c.guard.Validate(
		ErrCollectDeliveryCommandIsNotConstructed,
	)
}
