package commands

import (
	"errors"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/safety"
	"amenade/internal/pkg/guard"
)

var (
	ErrAssignPackageCommandIsNotConstructed = errors.New(
		"AssignPackageCommand must be created via NewAssignPackageCommand constructor",
	)

	// ErrConfirmationsIncomplete is returned when the safety checklist has
	// at least one unaffirmed item. The assignment performs no mutation.
	ErrConfirmationsIncomplete = errors.New("safety confirmations incomplete")
)

// NotifyTarget selects which side of an assignment receives the optional
// package-side effects: the package sender or the trip traveler.
type NotifyTarget int

const (
	// NotifyUnknown represents an invalid or undefined notify target.
	NotifyUnknown NotifyTarget = iota

	// NotifyTrip notifies only the trip's traveler.
	NotifyTrip

	// NotifyPackage additionally records a tracking event on the package
	// and notifies its sender.
	NotifyPackage
)

// NotifyTargetFromString parses the wire form of a notify target.
func NotifyTargetFromString(s string) (NotifyTarget, error) {
	switch s {
	case "TO_TRIP":
		return NotifyTrip, nil
	case "TO_PACKAGE":
		return NotifyPackage, nil
	default:
		return NotifyUnknown, errors.New("notification target must be TO_TRIP or TO_PACKAGE")
	}
}

// Validate rejects NotifyUnknown and out-of-range values.
func (n NotifyTarget) Validate() error {
	if n != NotifyTrip && n != NotifyPackage {
		return errors.New("notification target must be TO_TRIP or TO_PACKAGE")
	}
	return nil
}

// AssignPackageCommand represents a request to assign a posted package to a
// trip. Carries the acting user, the affirmed safety checklist, and the
// notification target selecting which side gets the package-side effects.
//
// Example:
//
//	cmd, err := NewAssignPackageCommand(packageID, tripID, actorID,
//	    confirmations, safety.ConfirmationAssignment, NotifyPackage)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//
//	handler := NewAssignPackageCommandHandler(uowFactory, capacityPolicy)
//	result, err := handler.Handle(ctx, cmd)
type AssignPackageCommand struct { //nolint:recvcheck //using for validation
	packageID        kernel.UUID
	tripID           kernel.UUID
	actorID          kernel.UUID
	confirmations    safety.ConfirmationSet
	confirmationType safety.ConfirmationType
	notifyTarget     NotifyTarget

	guard guard.ConstructorGuard
}

// NewAssignPackageCommand creates a command to assign a package to a trip.
// Validates all identifiers, requires a fully affirmed safety checklist
// (ErrConfirmationsIncomplete otherwise) and a valid confirmation type and
// notify target.
func NewAssignPackageCommand(
	packageID kernel.UUID,
	tripID kernel.UUID,
	actorID kernel.UUID,
	confirmations safety.ConfirmationSet,
	confirmationType safety.ConfirmationType,
	notifyTarget NotifyTarget,
) (AssignPackageCommand, error) {
	assignCommand := AssignPackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setPackageID(packageID),
		assignCommand.setTripID(tripID),
		assignCommand.setActorID(actorID),
		assignCommand.setConfirmations(confirmations),
		assignCommand.setConfirmationType(confirmationType),
		assignCommand.setNotifyTarget(notifyTarget),
	); err != nil {
		return AssignPackageCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPackageCommandIsNotConstructed if validation fails.
func (c AssignPackageCommand) Validate() error {
	return c.guard.Validate(ErrAssignPackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to assign.
func (c AssignPackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// TripID returns the identifier of the trip to assign the package to.
func (c AssignPackageCommand) TripID() kernel.UUID {
	return c.tripID
}

// ActorID returns the user performing the assignment.
func (c AssignPackageCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Confirmations returns the affirmed safety checklist.
func (c AssignPackageCommand) Confirmations() safety.ConfirmationSet {
	return c.confirmations
}

// ConfirmationType returns the workflow moment being confirmed.
func (c AssignPackageCommand) ConfirmationType() safety.ConfirmationType {
	return c.confirmationType
}

// NotifyTarget returns which side receives the package-side effects.
func (c AssignPackageCommand) NotifyTarget() NotifyTarget {
	return c.notifyTarget
}

func (c *AssignPackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}

func (c *AssignPackageCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *AssignPackageCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AssignPackageCommand) setConfirmations(confirmations safety.ConfirmationSet) error {
	if !confirmations.IsComplete() {
		return ErrConfirmationsIncomplete
	}

	c.confirmations = confirmations
	return nil
}

func (c *AssignPackageCommand) setConfirmationType(confirmationType safety.ConfirmationType) error {
	if err := confirmationType.Validate(); err != nil {
		return err
	}

	c.confirmationType = confirmationType
	return nil
}

func (c *AssignPackageCommand) setNotifyTarget(notifyTarget NotifyTarget) error {
	if err := notifyTarget.Validate(); err != nil {
		return err
	}

	c.notifyTarget = notifyTarget
	return nil
}
