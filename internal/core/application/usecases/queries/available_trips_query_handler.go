package queries

import (
	"context"
	"database/sql"
	"errors"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/trip"
	"amenade/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailableTripsQueryHandler lists the requesting user's posted trips whose
// remaining space can carry the package's declared weight.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type AvailableTripsQueryHandler struct {
	db *gorm.DB
}

// NewAvailableTripsQueryHandler creates a handler for trip lookup queries.
// Requires a GORM database connection for query execution.
func NewAvailableTripsQueryHandler(db *gorm.DB) AvailableTripsQueryHandler {
	return AvailableTripsQueryHandler{db: db}
}

// Handle executes the lookup. Fails with errs.ErrObjectNotFound when the
// package does not exist. An undeclared package weight matches every posted
// trip regardless of remaining space.
func (h AvailableTripsQueryHandler) Handle(
	ctx context.Context,
	query AvailableTripsQuery,
) ([]AvailableTripsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	weightKg, err := h.packageWeight(ctx, query.PackageID())
	if err != nil {
		return nil, err
	}

	filter := NewFilter(
		EqualsUUID("traveler_id", query.UserID()),
		EqualsInt("status", int(trip.Posted)),
		AtLeastFloat("available_space", weightKg),
	)
	clause, args := filter.Clause()

	trips := make([]AvailableTripsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			available_space,
			departure,
			arrival,
			origin_city,
			origin_country,
			destination_city,
			destination_country
		FROM trips
		WHERE `+clause+`
		ORDER BY departure ASC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var candidate AvailableTripsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&candidate.Title,
			&candidate.AvailableSpaceKg,
			&candidate.Departure,
			&candidate.Arrival,
			&candidate.OriginCity,
			&candidate.OriginCountry,
			&candidate.DestinationCity,
			&candidate.DestinationCountry,
		)
		if err != nil {
			return nil, err
		}

		tripID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		candidate.ID = tripID
		trips = append(trips, candidate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trips, nil
}

// packageWeight reads the package's declared weight, zero meaning
// undeclared.
func (h AvailableTripsQueryHandler) packageWeight(ctx context.Context, packageID kernel.UUID) (float64, error) {
	var weightKg float64

	row := h.db.WithContext(ctx).Raw(`
		SELECT weight FROM packages WHERE id = ?
	`, packageID.Bytes()).Row()

	if err := row.Scan(&weightKg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errs.NewObjectNotFoundError("packageId", packageID)
		}
		return 0, err
	}

	return weightKg, nil
}
