package queries

import (
	"errors"
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/pkg/guard"
)

var ErrAvailableTripsQueryIsNotConstructed = errors.New(
	"AvailableTripsQuery must be created via NewAvailableTripsQuery constructor",
)

// AvailableTripsQuery retrieves the requesting user's posted trips that can
// still carry the given package, ordered by departure date.
//
// Example:
//
//	query, err := NewAvailableTripsQuery(packageID, userID)
//	if err != nil {
//	    return fmt.Errorf("invalid lookup: %w", err)
//	}
//
//	handler := NewAvailableTripsQueryHandler(db)
//	trips, err := handler.Handle(ctx, query)
type AvailableTripsQuery struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	userID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAvailableTripsQuery creates a lookup for trips able to carry a package.
// Both the package and the requesting user must be identified.
func NewAvailableTripsQuery(packageID, userID kernel.UUID) (AvailableTripsQuery, error) {
	query := AvailableTripsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setPackageID(packageID),
		query.setUserID(userID),
	); err != nil {
		return AvailableTripsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q AvailableTripsQuery) Validate() error {
	return q.guard.Validate(ErrAvailableTripsQueryIsNotConstructed)
}

// PackageID returns the package the trips are evaluated against.
func (q AvailableTripsQuery) PackageID() kernel.UUID { return q.packageID }

// UserID returns the requesting user whose trips are listed.
func (q AvailableTripsQuery) UserID() kernel.UUID { return q.userID }

func (q *AvailableTripsQuery) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	q.packageID = packageID
	return nil
}

func (q *AvailableTripsQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

// AvailableTripsQueryResponse represents one candidate trip in the read model.
type AvailableTripsQueryResponse struct {
	ID                 kernel.UUID
	Title              string
	AvailableSpaceKg   float64
	Departure          time.Time
	Arrival            time.Time
	OriginCity         string
	OriginCountry      string
	DestinationCity    string
	DestinationCountry string
}
