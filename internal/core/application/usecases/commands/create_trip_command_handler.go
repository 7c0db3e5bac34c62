package commands

import (
	"context"

	"amenade/internal/core/domain/model/trip"
)

// CreateTripCommandHandler persists a newly posted trip.
// The trip is created in Posted status with its full declared capacity.
type CreateTripCommandHandler struct {
	uowFactory TripUoWFactory
}

// NewCreateTripCommandHandler creates a handler for trip creation.
func NewCreateTripCommandHandler(uowFactory TripUoWFactory) CreateTripCommandHandler {
	return CreateTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip creation command.
func (h CreateTripCommandHandler) Handle(ctx context.Context, command CreateTripCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newTrip, err := trip.NewTrip(
		command.TripID(),
		command.Title(),
		command.TravelerID(),
		command.AvailableSpace(),
		command.Departure(),
		command.Arrival(),
		command.Origin(),
		command.Destination(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TripRepository().Add(ctx, newTrip); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
