package ports

import (
	"context"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/packages"
)

// PackageRepository defines the persistence contract for package aggregates.
// Provides methods for storing, retrieving, and locking package entities
// based on their status and trip assignment state.
type PackageRepository interface {
	// Add persists a new package aggregate to storage.
	// The package must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *packages.Package) error

	// Update persists changes to an existing package aggregate.
	// The package must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *packages.Package) error

	// Get retrieves a package aggregate by its unique identifier.
	// Returns the complete package with its current status and trip reference.
	Get(ctx context.Context, id kernel.UUID) (*packages.Package, error)

	// GetForUpdate retrieves a package aggregate by its unique identifier,
	// taking a row-level write lock for the duration of the current
	// transaction. Used by assignment workflows to serialize competing
	// check-then-act operations on the same package.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*packages.Package, error)

	// GetAllAssignedToTrip retrieves all packages currently assigned to the
	// given trip. Used by trip activation to move matched packages in transit.
	GetAllAssignedToTrip(ctx context.Context, tripID kernel.UUID) ([]*packages.Package, error)
}
