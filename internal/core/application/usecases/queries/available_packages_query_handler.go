package queries

import (
	"context"
	"database/sql"
	"errors"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/packages"
	"amenade/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailablePackagesQueryHandler lists the requesting user's posted packages
// that have no trip assigned yet, as candidates for a trip.
type AvailablePackagesQueryHandler struct {
	db *gorm.DB
}

// NewAvailablePackagesQueryHandler creates a handler for package lookup queries.
func NewAvailablePackagesQueryHandler(db *gorm.DB) AvailablePackagesQueryHandler {
	return AvailablePackagesQueryHandler{db: db}
}

// Handle executes the lookup. Fails with errs.ErrObjectNotFound when the
// trip does not exist.
func (h AvailablePackagesQueryHandler) Handle(
	ctx context.Context,
	query AvailablePackagesQuery,
) ([]AvailablePackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.ensureTripExists(ctx, query.TripID()); err != nil {
		return nil, err
	}

	filter := NewFilter(
		EqualsUUID("sender_id", query.UserID()),
		EqualsInt("status", int(packages.Posted)),
		IsNull("trip_id"),
	)
	clause, args := filter.Clause()

	candidates := make([]AvailablePackagesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			category,
			weight,
			pickup_city,
			pickup_date,
			delivery_city,
			delivery_date,
			offered_price
		FROM packages
		WHERE `+clause+`
		ORDER BY pickup_date ASC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var candidate AvailablePackagesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&candidate.Title,
			&candidate.Category,
			&candidate.WeightKg,
			&candidate.PickupCity,
			&candidate.PickupDate,
			&candidate.DeliveryCity,
			&candidate.DeliveryDate,
			&candidate.OfferedPrice,
		)
		if err != nil {
			return nil, err
		}

		packageID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		candidate.ID = packageID
		candidates = append(candidates, candidate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}

func (h AvailablePackagesQueryHandler) ensureTripExists(ctx context.Context, tripID kernel.UUID) error {
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT id FROM trips WHERE id = ?
	`, tripID.Bytes()).Row()

	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NewObjectNotFoundError("tripId", tripID)
		}
		return err
	}

	return nil
}
