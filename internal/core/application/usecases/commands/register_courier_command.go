package commands

import (
	"errors"

	"deliveryconnect/internal/pkg/errs"
	"deliveryconnect/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand enrolls a new courier in the marketplace.
// New couriers start offline with no known position and a zero delivery counter.
type RegisterCourierCommand struct {
	name         string
	phone        string
	vehicleModel string
	licensePlate string

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a validated command to register a courier.
func NewRegisterCourierCommand(
	name string,
	phone string,
	vehicleModel string,
	licensePlate string,
) (RegisterCourierCommand, error) {
	if name == "" {
		return RegisterCourierCommand{}, errs.NewValueIsRequiredError("name")
	}
	if phone == "" {
		return RegisterCourierCommand{}, errs.NewValueIsRequiredError("phone")
	}

	return RegisterCourierCommand{
		name:         name,
		phone:        phone,
		vehicleModel: vehicleModel,
		licensePlate: licensePlate,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the courier's display name.
func (c *RegisterCourierCommand) Name() string {
	return c.name
}

// Phone returns the courier's contact phone.
func (c *RegisterCourierCommand) Phone() string {
	return c.phone
}

// VehicleModel returns the courier's vehicle description.
func (c *RegisterCourierCommand) VehicleModel() string {
	return c.vehicleModel
}

// LicensePlate returns the courier's vehicle plate.
func (c *RegisterCourierCommand) LicensePlate() string {
	return c.licensePlate
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterCourierCommandIsNotConstructed if validation fails.
func (c *RegisterCourierCommand) Validate() error {
	return c.guard.Validate(
		ErrRegisterCourierCommandIsNotConstructed,
	)
}
