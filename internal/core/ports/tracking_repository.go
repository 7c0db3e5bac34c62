package ports

import (
	"context"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the append-only
// tracking event log. Events are never updated or deleted.
type TrackingRepository interface {
	// Add appends a new tracking event to the package's history.
	Add(ctx context.Context, event *tracking.Event) error

	// GetAllForPackage retrieves the full tracking history of a package
	// in chronological order.
	GetAllForPackage(ctx context.Context, packageID kernel.UUID) ([]*tracking.Event, error)
}
