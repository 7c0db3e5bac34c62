package safetyrepo

import (
	"context"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/safety"

	"gorm.io/gorm"
)

// GormSafetyRepository implements SafetyRepository using GORM.
type GormSafetyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSafetyRepository creates a new GORM safety confirmation repository.
func NewGormSafetyRepository(db *gorm.DB, tracker aggregateTracker) *GormSafetyRepository {
	return &GormSafetyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new safety confirmation record to the database.
func (r *GormSafetyRepository) Add(ctx context.Context, record *safety.Confirmation) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetAllForPackage retrieves all confirmations recorded for a package in
// chronological order.
func (r *GormSafetyRepository) GetAllForPackage(
	ctx context.Context, packageID kernel.UUID,
) ([]*safety.Confirmation, error) {
	var dtos []ConfirmationDTO
	err := r.db.WithContext(ctx).
		Where("package_id = ?", packageID.Bytes()).
		Order("confirmed_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*safety.Confirmation, 0, len(dtos))
	for _, dto := range dtos {
		record, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		records = append(records, record)
	}
	return records, nil
}
