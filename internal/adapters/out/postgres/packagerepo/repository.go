package packagerepo

import (
	"context"
	"errors"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/packages"
	"amenade/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPackageRepository creates a new GORM package repository.
func NewGormPackageRepository(db *gorm.DB, tracker aggregateTracker) *GormPackageRepository {
	return &GormPackageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new package to the database.
func (r *GormPackageRepository) Add(ctx context.Context, aggregate *packages.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing package to the database. Select("*") forces nil
// trip references back to NULL when a package is unassigned.
func (r *GormPackageRepository) Update(ctx context.Context, aggregate *packages.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PackageDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a package by ID.
func (r *GormPackageRepository) Get(ctx context.Context, id kernel.UUID) (*packages.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("packageId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a package by ID holding a row-level write lock
// until the surrounding transaction ends.
func (r *GormPackageRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*packages.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("packageId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAssignedToTrip retrieves all packages assigned to the given trip.
func (r *GormPackageRepository) GetAllAssignedToTrip(
	ctx context.Context,
	tripID kernel.UUID,
) ([]*packages.Package, error) {
	if err := tripID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PackageDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "trip_id = ?", tripID.Bytes()).Error; err != nil {
		return nil, err
	}

	result := make([]*packages.Package, 0, len(dtos))
	for _, dto := range dtos {
		pkg, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, pkg)
	}

	return result, nil
}
