package commands

import (
	"errors"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/pkg/guard"
)

var ErrUnassignPackageCommandIsNotConstructed = errors.New(
	"UnassignPackageCommand must be created via NewUnassignPackageCommand constructor",
)

// UnassignPackageCommand represents a request to remove a package from its
// trip, returning it to the marketplace and restoring the trip's capacity.
type UnassignPackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnassignPackageCommand creates a command to unassign a package.
func NewUnassignPackageCommand(packageID, actorID kernel.UUID) (UnassignPackageCommand, error) {
	unassignCommand := UnassignPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		unassignCommand.setPackageID(packageID),
		unassignCommand.setActorID(actorID),
	); err != nil {
		return UnassignPackageCommand{}, err
	}

	return unassignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignPackageCommand) Validate() error {
	return c.guard.Validate(ErrUnassignPackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to unassign.
func (c UnassignPackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// ActorID returns the user performing the unassignment.
func (c UnassignPackageCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *UnassignPackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}

func (c *UnassignPackageCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
