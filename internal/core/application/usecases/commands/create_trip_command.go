package commands

import (
	"errors"
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/pkg/errs"
	"amenade/internal/pkg/guard"
)

var ErrCreateTripCommandIsNotConstructed = errors.New(
	"CreateTripCommand must be created via NewCreateTripCommand constructor",
)

// CreateTripCommand represents a request to post a new trip with its route,
// schedule and available space for carrying packages.
type CreateTripCommand struct { //nolint:recvcheck //using for validation
	tripID         kernel.UUID
	title          string
	travelerID     kernel.UUID
	availableSpace kernel.Weight
	departure      time.Time
	arrival        time.Time
	origin         kernel.Address
	destination    kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateTripCommand creates a command to post a new trip.
func NewCreateTripCommand(
	tripID kernel.UUID,
	title string,
	travelerID kernel.UUID,
	availableSpace kernel.Weight,
	departure time.Time,
	arrival time.Time,
	origin kernel.Address,
	destination kernel.Address,
) (CreateTripCommand, error) {
	createCommand := CreateTripCommand{
		availableSpace: availableSpace,
		departure:      departure,
		arrival:        arrival,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setTripID(tripID),
		createCommand.setTitle(title),
		createCommand.setTravelerID(travelerID),
		createCommand.setOrigin(origin),
		createCommand.setDestination(destination),
	); err != nil {
		return CreateTripCommand{}, err
	}

	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTripCommand) Validate() error {
	return c.guard.Validate(ErrCreateTripCommandIsNotConstructed)
}

// TripID returns the unique identifier for the trip.
func (c CreateTripCommand) TripID() kernel.UUID { return c.tripID }

// Title returns the short human-readable trip title.
func (c CreateTripCommand) Title() string { return c.title }

// TravelerID returns the user posting the trip.
func (c CreateTripCommand) TravelerID() kernel.UUID { return c.travelerID }

// AvailableSpace returns the declared carrying capacity.
func (c CreateTripCommand) AvailableSpace() kernel.Weight { return c.availableSpace }

// Departure returns the departure time.
func (c CreateTripCommand) Departure() time.Time { return c.departure }

// Arrival returns the arrival time.
func (c CreateTripCommand) Arrival() time.Time { return c.arrival }

// Origin returns the trip's origin address.
func (c CreateTripCommand) Origin() kernel.Address { return c.origin }

// Destination returns the trip's destination address.
func (c CreateTripCommand) Destination() kernel.Address { return c.destination }

func (c *CreateTripCommand) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	c.tripID = tripID
	return nil
}

func (c *CreateTripCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreateTripCommand) setTravelerID(travelerID kernel.UUID) error {
	if err := travelerID.Validate(); err != nil {
		return err
	}

	c.travelerID = travelerID
	return nil
}

func (c *CreateTripCommand) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return err
	}

	c.origin = origin
	return nil
}

func (c *CreateTripCommand) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}
