package trackingrepo

import (
	"context"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM.
type GormTrackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrackingRepository creates a new GORM tracking event repository.
func NewGormTrackingRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingRepository {
	return &GormTrackingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new tracking event to the package's history.
func (r *GormTrackingRepository) Add(ctx context.Context, event *tracking.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(event.ID(), event)
	return nil
}

// GetAllForPackage retrieves the full tracking history of a package in
// chronological order.
func (r *GormTrackingRepository) GetAllForPackage(
	ctx context.Context, packageID kernel.UUID,
) ([]*tracking.Event, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("package_id = ?", packageID.Bytes()).
		Order("occurred_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*tracking.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		events = append(events, event)
	}
	return events, nil
}
