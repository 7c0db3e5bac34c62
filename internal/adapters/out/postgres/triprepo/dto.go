// Package triprepo provides data transfer objects and mapping functions for
// trip persistence.
package triprepo

import (
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO represents the database structure for persisting trip aggregates.
type TripDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Status         int       `gorm:"index"`
	TravelerID     uuid.UUID `gorm:"type:uuid;index"`
	AvailableSpace float64   `gorm:"type:numeric(10,2)"`
	Departure      time.Time `gorm:"index"`
	Arrival        time.Time
	Origin         AddressDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination    AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
}

// TableName specifies the database table name for trip entities.
func (TripDTO) TableName() string {
	return "trips"
}

// AddressDTO represents an embedded postal address within the trip table.
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

// fromDomain converts a trip domain aggregate to its database representation.
func fromDomain(t *trip.Trip) TripDTO {
	return TripDTO{
		ID:             t.ID().Bytes(),
		Title:          t.Title(),
		Status:         int(t.Status()),
		TravelerID:     t.TravelerID().Bytes(),
		AvailableSpace: t.AvailableSpace().Kilograms(),
		Departure:      t.Departure(),
		Arrival:        t.Arrival(),
		Origin:         addressFromDomain(t.Origin()),
		Destination:    addressFromDomain(t.Destination()),
	}
}

// toDomain converts a database DTO to a trip domain aggregate using RestoreTrip.
func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	travelerID, err := kernel.UUIDFromBytes(dto.TravelerID[:])
	if err != nil {
		return nil, err
	}

	availableSpace, err := kernel.NewWeight(dto.AvailableSpace)
	if err != nil {
		return nil, err
	}

	origin, err := addressToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := addressToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	return trip.RestoreTrip(id, dto.Title, trip.Status(dto.Status), travelerID,
		availableSpace, dto.Departure, dto.Arrival, origin, destination)
}
