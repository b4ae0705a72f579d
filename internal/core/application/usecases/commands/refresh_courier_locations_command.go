package commands

import (
	"errors"

	"deliveryconnect/internal/pkg/guard"
)

var ErrRefreshCourierLocationsCommandIsNotConstructed = errors.New(
	"RefreshCourierLocationsCommand must be created via NewRefreshCourierLocationsCommand constructor",
)

// RefreshCourierLocationsCommand triggers a position refresh for every online
// courier. This is a parameterless command issued periodically by the
// location refresh job.
type RefreshCourierLocationsCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshCourierLocationsCommand creates a new command to refresh positions.
func NewRefreshCourierLocationsCommand() RefreshCourierLocationsCommand {
	return RefreshCourierLocationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshCourierLocationsCommandIsNotConstructed if validation fails.
func (c *RefreshCourierLocationsCommand) Validate() error {
	return c.guard.Validate(
		ErrRefreshCourierLocationsCommandIsNotConstructed,
	)
}
