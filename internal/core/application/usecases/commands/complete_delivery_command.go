package commands

import (
	"errors"

	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/pkg/errs"
	"deliveryconnect/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand marks an in-progress delivery as delivered.
// Issued by the courier once the package reaches its destination.
type CompleteDeliveryCommand struct {
	deliveryID delivery.ID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a validated command to complete a delivery.
func NewCompleteDeliveryCommand(deliveryID delivery.ID) (CompleteDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return CompleteDeliveryCommand{}, errs.NewValueIsRequiredErrorWithCause("deliveryID", err)
	}

	return CompleteDeliveryCommand{
		deliveryID: deliveryID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the identifier of the delivery being completed.
func (c *CompleteDeliveryCommand) DeliveryID() delivery.ID {
	return c.deliveryID
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveryCommandIsNotConstructed if validation fails.
func (c *CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(
		ErrCompleteDeliveryCommandIsNotConstructed,
	)
}
