package queries

import (
	"errors"
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/pkg/guard"
)

var ErrAvailablePackagesQueryIsNotConstructed = errors.New(
	"AvailablePackagesQuery must be created via NewAvailablePackagesQuery constructor",
)

// AvailablePackagesQuery retrieves the requesting user's posted, unassigned
// packages as candidates for the given trip, ordered by pickup date.
type AvailablePackagesQuery struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAvailablePackagesQuery creates a lookup for packages a trip could carry.
func NewAvailablePackagesQuery(tripID, userID kernel.UUID) (AvailablePackagesQuery, error) {
	query := AvailablePackagesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setTripID(tripID),
		query.setUserID(userID),
	); err != nil {
		return AvailablePackagesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q AvailablePackagesQuery) Validate() error {
	return q.guard.Validate(ErrAvailablePackagesQueryIsNotConstructed)
}

// TripID returns the trip the packages are candidates for.
func (q AvailablePackagesQuery) TripID() kernel.UUID { return q.tripID }

// UserID returns the requesting user whose packages are listed.
func (q AvailablePackagesQuery) UserID() kernel.UUID { return q.userID }

func (q *AvailablePackagesQuery) setTripID(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	q.tripID = tripID
	return nil
}

func (q *AvailablePackagesQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

// AvailablePackagesQueryResponse represents one candidate package in the
// read model.
type AvailablePackagesQueryResponse struct {
	ID           kernel.UUID
	Title        string
	Category     string
	WeightKg     float64
	PickupCity   string
	PickupDate   time.Time
	DeliveryCity string
	DeliveryDate time.Time
	OfferedPrice float64
}
