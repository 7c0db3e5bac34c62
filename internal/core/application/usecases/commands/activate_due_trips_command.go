package commands

import (
	"errors"

	"amenade/internal/pkg/guard"
)

var ErrActivateDueTripsCommandIsNotConstructed = errors.New(
	"ActivateDueTripsCommand must be created via NewActivateDueTripsCommand constructor",
)

// ActivateDueTripsCommand triggers activation of all posted trips whose
// departure time has passed, moving their matched packages in transit.
// This is a parameterless command issued periodically by the job scheduler.
type ActivateDueTripsCommand struct {
	guard guard.ConstructorGuard
}

// NewActivateDueTripsCommand creates a new command to trigger trip activation.
func NewActivateDueTripsCommand() ActivateDueTripsCommand {
	return ActivateDueTripsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrActivateDueTripsCommandIsNotConstructed if validation fails.
func (c *ActivateDueTripsCommand) Validate() error {
	return c.guard.Validate(
		ErrActivateDueTripsCommandIsNotConstructed,
	)
}
