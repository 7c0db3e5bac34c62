package ports

import (
	"context"
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/trip"
)

// TripRepository defines the persistence contract for trip aggregates.
type TripRepository interface {
	// Add persists a new trip aggregate to storage.
	// The trip must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *trip.Trip) error

	// Update persists changes to an existing trip aggregate.
	// The trip must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *trip.Trip) error

	// Get retrieves a trip aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)

	// GetForUpdate retrieves a trip aggregate by its unique identifier,
	// taking a row-level write lock for the duration of the current
	// transaction. Serializes concurrent space reservations on the same trip.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*trip.Trip, error)

	// GetAllDueForDeparture retrieves all posted trips whose departure time
	// is at or before now. Used by the trip activation job.
	GetAllDueForDeparture(ctx context.Context, now time.Time) ([]*trip.Trip, error)
}
