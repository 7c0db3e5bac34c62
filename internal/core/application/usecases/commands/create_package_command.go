package commands

import (
	"errors"
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/packages"
	"amenade/internal/pkg/errs"
	"amenade/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand represents a request to post a new package on the
// marketplace. Carries the routing endpoints, dimensions and offered price.
//
// Example:
//
//	cmd, err := NewCreatePackageCommand(kernel.NewUUID(), "Documents", "", "DOCUMENTS",
//	    dimensions, senderID, pickup, pickupDate, delivery, deliveryDate, 25)
//	if err != nil {
//	    return fmt.Errorf("invalid package data: %w", err)
//	}
//
//	handler := NewCreatePackageCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create package: %w", err)
//	}
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID    kernel.UUID
	title        string
	description  string
	category     string
	dimensions   packages.Dimensions
	senderID     kernel.UUID
	pickup       kernel.Address
	pickupDate   time.Time
	delivery     kernel.Address
	deliveryDate time.Time
	offeredPrice float64

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand creates a command to post a new package.
// Identifiers, addresses and dimensions must already be valid value objects;
// title must be non-empty and the offered price non-negative.
func NewCreatePackageCommand(
	packageID kernel.UUID,
	title string,
	description string,
	category string,
	dimensions packages.Dimensions,
	senderID kernel.UUID,
	pickup kernel.Address,
	pickupDate time.Time,
	delivery kernel.Address,
	deliveryDate time.Time,
	offeredPrice float64,
) (CreatePackageCommand, error) {
	createCommand := CreatePackageCommand{
		description:  description,
		category:     category,
		dimensions:   dimensions,
		pickupDate:   pickupDate,
		deliveryDate: deliveryDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setPackageID(packageID),
		createCommand.setTitle(title),
		createCommand.setSenderID(senderID),
		createCommand.setPickup(pickup),
		createCommand.setDelivery(delivery),
		createCommand.setOfferedPrice(offeredPrice),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// PackageID returns the unique identifier for the package.
func (c CreatePackageCommand) PackageID() kernel.UUID { return c.packageID }

// Title returns the short human-readable package title.
func (c CreatePackageCommand) Title() string { return c.title }

// Description returns the free-form package description.
func (c CreatePackageCommand) Description() string { return c.description }

// Category returns the package category label.
func (c CreatePackageCommand) Category() string { return c.category }

// Dimensions returns the package dimensions and declared weight.
func (c CreatePackageCommand) Dimensions() packages.Dimensions { return c.dimensions }

// SenderID returns the user posting the package.
func (c CreatePackageCommand) SenderID() kernel.UUID { return c.senderID }

// Pickup returns the pickup address.
func (c CreatePackageCommand) Pickup() kernel.Address { return c.pickup }

// PickupDate returns the requested pickup date.
func (c CreatePackageCommand) PickupDate() time.Time { return c.pickupDate }

// Delivery returns the delivery address.
func (c CreatePackageCommand) Delivery() kernel.Address { return c.delivery }

// DeliveryDate returns the requested delivery date.
func (c CreatePackageCommand) DeliveryDate() time.Time { return c.deliveryDate }

// OfferedPrice returns the price offered for the delivery.
func (c CreatePackageCommand) OfferedPrice() float64 { return c.offeredPrice }

func (c *CreatePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	c.packageID = packageID
	return nil
}

func (c *CreatePackageCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreatePackageCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *CreatePackageCommand) setPickup(pickup kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}

func (c *CreatePackageCommand) setDelivery(delivery kernel.Address) error {
	if err := delivery.Validate(); err != nil {
		return err
	}

	c.delivery = delivery
	return nil
}

func (c *CreatePackageCommand) setOfferedPrice(offeredPrice float64) error {
	if offeredPrice < 0 {
		return errs.NewValueIsInvalidError("offeredPrice")
	}

	c.offeredPrice = offeredPrice
	return nil
}
