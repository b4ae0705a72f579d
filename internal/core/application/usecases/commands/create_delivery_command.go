package commands

import (
	"errors"

	"deliveryconnect/internal/core/domain/model/kernel"
	"deliveryconnect/internal/pkg/errs"
	"deliveryconnect/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand registers a new delivery request published by a commerce.
// The delivery starts in pending status and becomes visible to online couriers
// through its handoff code.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(commerceID, "Pizza Hub", "Av. Paulista 1000", "2x large pizza", 50)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct {
	commerceID   kernel.UUID
	commerceName string
	address      string
	description  string
	value        float64

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a validated command to register a delivery.
// Returns a validation error when any required field is missing or the value
// is not a positive amount.
func NewCreateDeliveryCommand(
	commerceID kernel.UUID,
	commerceName string,
	address string,
	description string,
	value float64,
) (CreateDeliveryCommand, error) {
	if err := commerceID.Validate(); err != nil {
		return CreateDeliveryCommand{}, errs.NewValueIsRequiredErrorWithCause("commerceID", err)
	}
	if commerceName == "" {
		return CreateDeliveryCommand{}, errs.NewValueIsRequiredError("commerceName")
	}
	if address == "" {
		return CreateDeliveryCommand{}, errs.NewValueIsRequiredError("address")
	}
	if value <= 0 {
		return CreateDeliveryCommand{}, errs.NewValueIsInvalidError("value")
	}

	return CreateDeliveryCommand{
		commerceID:   commerceID,
		commerceName: commerceName,
		address:      address,
		description:  description,
		value:        value,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// CommerceID returns the identifier of the commerce publishing the delivery.
func (c *CreateDeliveryCommand) CommerceID() kernel.UUID {
	return c.commerceID
}

// CommerceName returns the display name of the publishing commerce.
func (c *CreateDeliveryCommand) CommerceName() string {
	return c.commerceName
}

// Address returns the destination address.
func (c *CreateDeliveryCommand) Address() string {
	return c.address
}

// Description returns the free-form contents description.
func (c *CreateDeliveryCommand) Description() string {
	return c.description
}

// Value returns the declared delivery value in currency units.
func (c *CreateDeliveryCommand) Value() float64 {
	return c.value
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c *CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(
		ErrCreateDeliveryCommandIsNotConstructed,
	)
}
