// Package trackingrepo provides data transfer objects and mapping functions
// for the append-only tracking event log.
package trackingrepo

import (
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting tracking events.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID   uuid.UUID `gorm:"type:uuid;index"`
	EventType   int       `gorm:""`
	Description string    `gorm:"type:text;not null"`
	Location    string    `gorm:"type:varchar(255)"`
	OccurredAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for tracking event entities.
func (EventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking event to its database representation.
func fromDomain(event *tracking.Event) EventDTO {
	return EventDTO{
		ID:          event.ID().Bytes(),
		PackageID:   event.PackageID().Bytes(),
		EventType:   int(event.Type()),
		Description: event.Description(),
		Location:    event.Location(),
		OccurredAt:  event.OccurredAt(),
	}
}

// toDomain converts a database DTO to a tracking event.
func toDomain(dto EventDTO) (*tracking.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return nil, err
	}

	return tracking.NewEvent(id, packageID, tracking.EventType(dto.EventType),
		dto.Description, dto.Location, dto.OccurredAt)
}
