package packages

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/pkg/errs"
	"amenade/internal/pkg/guard"
)

// Domain errors for package operations.
var (
	// ErrPackageIsNotConstructed is returned when using an improperly initialized Package.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")
	// ErrTitleIsRequired is returned when attempting to create a package without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrAlreadyAssignedToTrip is returned when assigning a package that already has a trip.
	ErrAlreadyAssignedToTrip = errors.New("package is already assigned to a trip")
	// ErrNotAssignedToTrip is returned when unassigning a package that has no trip.
	ErrNotAssignedToTrip = errors.New("package is not assigned to a trip")
)

// Dimensions describes the declared physical size of a package.
// Length, width, and height are in centimeters; zero values mean undeclared.
// Weight drives capacity accounting on trips.
type Dimensions struct {
	length float64
	width  float64
	height float64
	weight kernel.Weight
}

// NewDimensions creates validated package dimensions.
// Any measure may be zero (undeclared); negative values are rejected.
func NewDimensions(length, width, height float64, weight kernel.Weight) (Dimensions, error) {
	for name, v := range map[string]float64{"length": length, "width": width, "height": height} {
		if v < 0 {
			return Dimensions{}, errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("%v is negative", v))
		}
	}
	if err := weight.Validate(); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{length: length, width: width, height: height, weight: weight}, nil
}

// Length returns the declared length in centimeters, zero if undeclared.
func (d Dimensions) Length() float64 { return d.length }

// Width returns the declared width in centimeters, zero if undeclared.
func (d Dimensions) Width() float64 { return d.width }

// Height returns the declared height in centimeters, zero if undeclared.
func (d Dimensions) Height() float64 { return d.height }

// Weight returns the declared weight, undeclared (zero) if the sender did not weigh the package.
func (d Dimensions) Weight() kernel.Weight { return d.weight }

// Package represents a shipment request posted by a sender. It is the
// aggregate root for the sender side of the marketplace: it owns the
// package lifecycle from draft through posting, matching with a trip,
// transit, and delivery.
//
// Invariants:
//   - Must have a valid unique identifier, sender, title, and addresses
//   - A package holding a trip reference is Matched or later in the lifecycle
//   - A package is assigned to at most one trip at a time
//   - Status transitions follow the Status state machine
//   - Can only be created through NewPackage
type Package struct {
	id           kernel.UUID
	title        string
	description  string
	category     string
	status       Status
	dimensions   Dimensions
	senderID     kernel.UUID
	tripID       *kernel.UUID
	pickup       kernel.Address
	delivery     kernel.Address
	pickupDate   time.Time
	deliveryDate time.Time
	offeredPrice float64

	guard guard.ConstructorGuard
}

// NewPackage creates a new Package in Draft status.
// All identity and routing parameters are validated; the package becomes
// visible to travelers only after Post is called.
func NewPackage(
	id kernel.UUID,
	title string,
	description string,
	category string,
	dimensions Dimensions,
	senderID kernel.UUID,
	pickup kernel.Address,
	pickupDate time.Time,
	delivery kernel.Address,
	deliveryDate time.Time,
	offeredPrice float64,
) (*Package, error) {
	p := &Package{
		status:       Draft,
		description:  strings.TrimSpace(description),
		category:     strings.TrimSpace(category),
		pickupDate:   pickupDate,
		deliveryDate: deliveryDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTitle(title),
		p.setDimensions(dimensions),
		p.setSenderID(senderID),
		p.setPickup(pickup),
		p.setDelivery(delivery),
		p.setOfferedPrice(offeredPrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackage reconstructs a Package aggregate from persistent storage.
// Unlike NewPackage it accepts any valid status and an optional trip
// reference, and enforces the status/trip consistency invariant.
func RestorePackage(
	id kernel.UUID,
	title string,
	description string,
	category string,
	status Status,
	dimensions Dimensions,
	senderID kernel.UUID,
	tripID *kernel.UUID,
	pickup kernel.Address,
	pickupDate time.Time,
	delivery kernel.Address,
	deliveryDate time.Time,
	offeredPrice float64,
) (*Package, error) {
	p, err := NewPackage(id, title, description, category, dimensions, senderID,
		pickup, pickupDate, delivery, deliveryDate, offeredPrice)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveTrip(tripID != nil); err != nil {
		return nil, err
	}
	if tripID != nil {
		if err = tripID.Validate(); err != nil {
			return nil, err
		}
	}

	p.status = status
	p.tripID = tripID
	return p, nil
}

// Validate ensures the Package was constructed through NewPackage or RestorePackage.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// IsEqual compares two packages by their unique identifiers.
func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID { return p.id }

// Title returns the short human-readable name of the package.
func (p *Package) Title() string { return p.title }

// Description returns the free-form description, possibly empty.
func (p *Package) Description() string { return p.description }

// Category returns the package category, possibly empty.
func (p *Package) Category() string { return p.category }

// Status returns the current lifecycle status.
func (p *Package) Status() Status { return p.status }

// Dimensions returns the declared physical size.
func (p *Package) Dimensions() Dimensions { return p.dimensions }

// Weight returns the declared weight, undeclared (zero) when the sender
// did not weigh the package.
func (p *Package) Weight() kernel.Weight { return p.dimensions.weight }

// SenderID returns the identifier of the sender who posted the package.
func (p *Package) SenderID() kernel.UUID { return p.senderID }

// Trip returns the assigned trip's ID, or nil when unassigned.
func (p *Package) Trip() *kernel.UUID { return p.tripID }

// Pickup returns the pickup address.
func (p *Package) Pickup() kernel.Address { return p.pickup }

// Delivery returns the delivery address.
func (p *Package) Delivery() kernel.Address { return p.delivery }

// PickupDate returns the requested pickup date.
func (p *Package) PickupDate() time.Time { return p.pickupDate }

// DeliveryDate returns the requested delivery date.
func (p *Package) DeliveryDate() time.Time { return p.deliveryDate }

// OfferedPrice returns the price the sender offers for delivery.
func (p *Package) OfferedPrice() float64 { return p.offeredPrice }

// Post publishes the package, making it visible to travelers.
func (p *Package) Post() error {
	newStatus, err := p.status.Post()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// AssignToTrip links the package to a trip and transitions it to Matched.
//
// Business rules:
//   - The trip ID must be valid
//   - The package must not already be assigned (ErrAlreadyAssignedToTrip)
//   - The package must be in Posted status
func (p *Package) AssignToTrip(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	if p.tripID != nil {
		return ErrAlreadyAssignedToTrip
	}

	newStatus, err := p.status.Match()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.tripID = &tripID
	return nil
}

// UnassignFromTrip clears the trip reference and returns the package to
// Posted status. Only Matched packages can be unassigned; a package in
// transit stays with its trip.
func (p *Package) UnassignFromTrip() error {
	if p.tripID == nil {
		return ErrNotAssignedToTrip
	}

	newStatus, err := p.status.Post()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.tripID = nil
	return nil
}

// StartTransit marks the package as travelling with its assigned trip.
func (p *Package) StartTransit() error {
	newStatus, err := p.status.StartTransit()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Deliver marks the package as delivered to its recipient.
func (p *Package) Deliver() error {
	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Cancel withdraws an unassigned package from the marketplace.
func (p *Package) Cancel() error {
	newStatus, err := p.status.Cancel()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrTitleIsRequired
	}
	p.title = title
	return nil
}

func (p *Package) setDimensions(dimensions Dimensions) error {
	if err := dimensions.weight.Validate(); err != nil {
		return err
	}
	p.dimensions = dimensions
	return nil
}

func (p *Package) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderId", err)
	}
	p.senderID = senderID
	return nil
}

func (p *Package) setPickup(pickup kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	p.pickup = pickup
	return nil
}

func (p *Package) setDelivery(delivery kernel.Address) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	p.delivery = delivery
	return nil
}

func (p *Package) setOfferedPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("offeredPrice",
			fmt.Errorf("%v is negative", price))
	}
	p.offeredPrice = price
	return nil
}
