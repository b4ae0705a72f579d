package commands

import (
	"errors"

	"deliveryconnect/internal/core/domain/model/kernel"
	"deliveryconnect/internal/pkg/errs"
	"deliveryconnect/internal/pkg/guard"
)

var ErrSetCourierOnlineCommandIsNotConstructed = errors.New(
	"SetCourierOnlineCommand must be created via NewSetCourierOnlineCommand constructor",
)

// SetCourierOnlineCommand toggles a courier's availability.
// Online couriers appear in availability listings and have their positions
// refreshed by the location job; offline couriers disappear from both.
type SetCourierOnlineCommand struct {
	courierID kernel.UUID
	online    bool

	guard guard.ConstructorGuard
}

// NewSetCourierOnlineCommand creates a validated command to toggle availability.
func NewSetCourierOnlineCommand(courierID kernel.UUID, online bool) (SetCourierOnlineCommand, error) {
	if err := courierID.Validate(); err != nil {
		return SetCourierOnlineCommand{}, errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}

	return SetCourierOnlineCommand{
		courierID: courierID,
		online:    online,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// CourierID returns the identifier of the courier being toggled.
func (c *SetCourierOnlineCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Online reports the requested availability state.
func (c *SetCourierOnlineCommand) Online() bool {
	return c.online
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetCourierOnlineCommandIsNotConstructed if validation fails.
func (c *SetCourierOnlineCommand) Validate() error {
	return c.guard.Validate(
		ErrSetCourierOnlineCommandIsNotConstructed,
	)
}
