// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence. Notifications are write-once rows.
package notificationrepo

import (
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// notification records.
type NotificationDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID      uuid.UUID  `gorm:"type:uuid;index"`
	NotificationType int        `gorm:""`
	Title            string     `gorm:"type:varchar(255);not null"`
	Message          string     `gorm:"type:text"`
	PackageID        *uuid.UUID `gorm:"type:uuid;index"`
	TripID           *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time  `gorm:"index"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification record to its database representation.
func fromDomain(n *notification.Notification) NotificationDTO {
	var packageID *uuid.UUID
	if id := n.PackageID(); id != nil {
		raw := id.Bytes()
		packageID = &raw
	}

	var tripID *uuid.UUID
	if id := n.TripID(); id != nil {
		raw := id.Bytes()
		tripID = &raw
	}

	return NotificationDTO{
		ID:               n.ID().Bytes(),
		RecipientID:      n.RecipientID().Bytes(),
		NotificationType: int(n.NotificationType()),
		Title:            n.Title(),
		Message:          n.Message(),
		PackageID:        packageID,
		TripID:           tripID,
		CreatedAt:        n.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification record.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	var packageID *kernel.UUID
	if dto.PackageID != nil {
		pID, pkgErr := kernel.UUIDFromBytes((*dto.PackageID)[:])
		if pkgErr != nil {
			return nil, pkgErr
		}
		packageID = &pID
	}

	var tripID *kernel.UUID
	if dto.TripID != nil {
		tID, tripErr := kernel.UUIDFromBytes((*dto.TripID)[:])
		if tripErr != nil {
			return nil, tripErr
		}
		tripID = &tID
	}

	return notification.NewNotification(id, recipientID,
		notification.Type(dto.NotificationType), dto.Title, dto.Message,
		packageID, tripID, dto.CreatedAt)
}
