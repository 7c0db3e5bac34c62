// Package packagerepo provides data transfer objects and mapping functions
// for package persistence. It implements the repository pattern for the
// package domain aggregate, handling the conversion between domain entities
// and database representations.
package packagerepo

import (
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/packages"

	"github.com/google/uuid"
)

// PackageDTO represents the database structure for persisting package
// aggregates, indexed for efficient querying by status and trip assignment.
type PackageDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Description  string     `gorm:"type:text"`
	Category     string     `gorm:"type:varchar(64)"`
	Status       int        `gorm:"index"`
	Length       float64    `gorm:"type:numeric(10,2)"`
	Width        float64    `gorm:"type:numeric(10,2)"`
	Height       float64    `gorm:"type:numeric(10,2)"`
	Weight       float64    `gorm:"type:numeric(10,2)"`
	SenderID     uuid.UUID  `gorm:"type:uuid;index"`
	TripID       *uuid.UUID `gorm:"type:uuid;index"`
	Pickup       AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	PickupDate   time.Time
	Delivery     AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	DeliveryDate time.Time
	OfferedPrice float64 `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for package entities.
func (PackageDTO) TableName() string {
	return "packages"
}

// AddressDTO represents an embedded postal address within the package table.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(128)"`
	Country string `gorm:"type:varchar(128)"`
}

func addressFromDomain(address kernel.Address) AddressDTO {
	return AddressDTO{
		Street:  address.Street(),
		City:    address.City(),
		Country: address.Country(),
	}
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(dto.Street, dto.City, dto.Country)
}

// fromDomain converts a package domain aggregate to its database
// representation, including the optional trip assignment.
func fromDomain(pkg *packages.Package) PackageDTO {
	var tripID *uuid.UUID
	if id := pkg.Trip(); id != nil {
		raw := id.Bytes()
		tripID = &raw
	}

	return PackageDTO{
		ID:           pkg.ID().Bytes(),
		Title:        pkg.Title(),
		Description:  pkg.Description(),
		Category:     pkg.Category(),
		Status:       int(pkg.Status()),
		Length:       pkg.Dimensions().Length(),
		Width:        pkg.Dimensions().Width(),
		Height:       pkg.Dimensions().Height(),
		Weight:       pkg.Dimensions().Weight().Kilograms(),
		SenderID:     pkg.SenderID().Bytes(),
		TripID:       tripID,
		Pickup:       addressFromDomain(pkg.Pickup()),
		PickupDate:   pkg.PickupDate(),
		Delivery:     addressFromDomain(pkg.Delivery()),
		DeliveryDate: pkg.DeliveryDate(),
		OfferedPrice: pkg.OfferedPrice(),
	}
}

// toDomain converts a database DTO to a package domain aggregate using
// RestorePackage, enforcing the status and trip consistency invariant.
func toDomain(dto PackageDTO) (*packages.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	var tripID *kernel.UUID
	if dto.TripID != nil {
		tID, tripErr := kernel.UUIDFromBytes((*dto.TripID)[:])
		if tripErr != nil {
			return nil, tripErr
		}

		tripID = &tID
	}

	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	dimensions, err := packages.NewDimensions(dto.Length, dto.Width, dto.Height, weight)
	if err != nil {
		return nil, err
	}

	pickup, err := addressToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}

	delivery, err := addressToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	return packages.RestorePackage(id, dto.Title, dto.Description, dto.Category,
		packages.Status(dto.Status), dimensions, senderID, tripID,
		pickup, dto.PickupDate, delivery, dto.DeliveryDate, dto.OfferedPrice)
}
