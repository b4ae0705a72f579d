package commands

import (
	"errors"

	"deliveryconnect/internal/core/domain/model/delivery"
	"deliveryconnect/internal/pkg/errs"
	"deliveryconnect/internal/pkg/guard"
)

var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand moves a collected delivery into transit.
// Issued by the transit scheduler shortly after a successful collection.
type StartTransitCommand struct {
	deliveryID delivery.ID

	guard guard.ConstructorGuard
}

// NewStartTransitCommand creates a validated command to start transit.
func NewStartTransitCommand(deliveryID delivery.ID) (StartTransitCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return StartTransitCommand{}, errs.NewValueIsRequiredErrorWithCause("deliveryID", err)
	}

	return StartTransitCommand{
		deliveryID: deliveryID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the identifier of the delivery entering transit.
func (c *StartTransitCommand) DeliveryID() delivery.ID {
	return c.deliveryID
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartTransitCommandIsNotConstructed if validation fails.
func (c *StartTransitCommand) Validate() error {
	return c.guard.Validate(
		ErrStartTransitCommandIsNotConstructed,
	)
}
