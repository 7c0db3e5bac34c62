package ports

import (
	"context"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notification
// records. Notifications are write-once; there is no update operation.
type NotificationRepository interface {
	// Add persists a new notification record to storage.
	Add(ctx context.Context, record *notification.Notification) error

	// GetAllForRecipient retrieves all notifications addressed to the given
	// user, newest first.
	GetAllForRecipient(ctx context.Context, recipientID kernel.UUID) ([]*notification.Notification, error)
}
