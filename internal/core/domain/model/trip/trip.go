// Package trip contains the Trip aggregate: a travel capacity offer posted
// by a traveler, with a weight budget that is reserved as packages are
// assigned and released when they are unassigned.
package trip

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/pkg/errs"
	"amenade/internal/pkg/guard"
)

// Domain errors for trip operations.
var (
	// ErrTripIsNotConstructed is returned when using an improperly initialized Trip.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip constructor")
	// ErrInsufficientSpace is returned when reserving more space than the trip has left.
	ErrInsufficientSpace = errors.New("trip has insufficient available space")
	// ErrDepartureAfterArrival is returned when the departure date is not before the arrival date.
	ErrDepartureAfterArrival = errors.New("departure must be before arrival")
)

// Trip represents a travel capacity offer. It is the aggregate root for
// the traveler side of the marketplace: it owns the remaining weight
// budget and the trip lifecycle.
//
// Invariants:
//   - Available space never goes negative
//   - Departure is strictly before arrival
//   - Only Posted trips accept package assignments
type Trip struct {
	id             kernel.UUID
	title          string
	status         Status
	travelerID     kernel.UUID
	availableSpace kernel.Weight
	departure      time.Time
	arrival        time.Time
	origin         kernel.Address
	destination    kernel.Address

	guard guard.ConstructorGuard
}

// NewTrip creates a new Trip in Posted status with the full declared
// capacity available.
func NewTrip(
	id kernel.UUID,
	title string,
	travelerID kernel.UUID,
	availableSpace kernel.Weight,
	departure time.Time,
	arrival time.Time,
	origin kernel.Address,
	destination kernel.Address,
) (*Trip, error) {
	t := &Trip{
		status: Posted,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setTitle(title),
		t.setTravelerID(travelerID),
		t.setAvailableSpace(availableSpace),
		t.setSchedule(departure, arrival),
		t.setOrigin(origin),
		t.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTrip reconstructs a Trip aggregate from persistent storage,
// accepting any valid status and the current remaining space.
func RestoreTrip(
	id kernel.UUID,
	title string,
	status Status,
	travelerID kernel.UUID,
	availableSpace kernel.Weight,
	departure time.Time,
	arrival time.Time,
	origin kernel.Address,
	destination kernel.Address,
) (*Trip, error) {
	t, err := NewTrip(id, title, travelerID, availableSpace, departure, arrival, origin, destination)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	t.status = status
	return t, nil
}

// Validate ensures the Trip was constructed through NewTrip or RestoreTrip.
func (t *Trip) Validate() error {
	if t == nil {
		return ErrTripIsNotConstructed
	}
	return t.guard.Validate(ErrTripIsNotConstructed)
}

// IsEqual compares two trips by their unique identifiers.
func (t *Trip) IsEqual(other *Trip) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the trip's unique identifier.
func (t *Trip) ID() kernel.UUID { return t.id }

// Title returns the short human-readable name of the trip.
func (t *Trip) Title() string { return t.title }

// Status returns the current lifecycle status.
func (t *Trip) Status() Status { return t.status }

// TravelerID returns the identifier of the traveler who posted the trip.
func (t *Trip) TravelerID() kernel.UUID { return t.travelerID }

// AvailableSpace returns the remaining weight budget.
func (t *Trip) AvailableSpace() kernel.Weight { return t.availableSpace }

// Departure returns the planned departure time.
func (t *Trip) Departure() time.Time { return t.departure }

// Arrival returns the planned arrival time.
func (t *Trip) Arrival() time.Time { return t.arrival }

// Origin returns the origin address.
func (t *Trip) Origin() kernel.Address { return t.origin }

// Destination returns the destination address.
func (t *Trip) Destination() kernel.Address { return t.destination }

// ReserveSpace decrements the available space by the given weight when a
// package is assigned. An undeclared weight reserves nothing.
//
// When the weight exceeds the remaining space the call fails with
// ErrInsufficientSpace, unless allowOverbooking is set, in which case the
// remaining space is floored at zero. Available space never goes negative
// either way.
func (t *Trip) ReserveSpace(weight kernel.Weight, allowOverbooking bool) error {
	if err := t.status.ValidateAcceptsPackages(); err != nil {
		return err
	}

	if weight.IsUndeclared() {
		return nil
	}

	remaining, err := t.availableSpace.Subtract(weight)
	if err != nil {
		if !allowOverbooking {
			return ErrInsufficientSpace
		}
		remaining = kernel.Weight{}
	}

	t.availableSpace = remaining
	return nil
}

// ReleaseSpace returns previously reserved space when a package is
// unassigned. An undeclared weight releases nothing.
func (t *Trip) ReleaseSpace(weight kernel.Weight) {
	if weight.IsUndeclared() {
		return
	}
	t.availableSpace = t.availableSpace.Add(weight)
}

// IsDueForDeparture reports whether a Posted trip's departure time has
// passed, making it eligible for activation.
func (t *Trip) IsDueForDeparture(now time.Time) bool {
	return t.status == Posted && !t.departure.After(now)
}

// Activate marks the trip as departed.
func (t *Trip) Activate() error {
	newStatus, err := t.status.Activate()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// Complete marks the trip as finished.
func (t *Trip) Complete() error {
	newStatus, err := t.status.Complete()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// Cancel withdraws a Posted trip from the marketplace.
func (t *Trip) Cancel() error {
	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	t.title = title
	return nil
}

func (t *Trip) setTravelerID(travelerID kernel.UUID) error {
	if err := travelerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("travelerId", err)
	}
	t.travelerID = travelerID
	return nil
}

func (t *Trip) setAvailableSpace(space kernel.Weight) error {
	if err := space.Validate(); err != nil {
		return err
	}
	t.availableSpace = space
	return nil
}

func (t *Trip) setSchedule(departure, arrival time.Time) error {
	if departure.IsZero() {
		return errs.NewValueIsRequiredError("departure")
	}
	if arrival.IsZero() {
		return errs.NewValueIsRequiredError("arrival")
	}
	if !departure.Before(arrival) {
		return fmt.Errorf("%w: departure %s, arrival %s",
			ErrDepartureAfterArrival, departure.Format(time.RFC3339), arrival.Format(time.RFC3339))
	}
	t.departure = departure
	t.arrival = arrival
	return nil
}

func (t *Trip) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	t.origin = origin
	return nil
}

func (t *Trip) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	t.destination = destination
	return nil
}
