package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/notification"
	"amenade/internal/core/domain/model/packages"
	"amenade/internal/core/domain/model/tracking"
	"amenade/internal/core/domain/model/trip"
)

// ActivateDueTripsCommandHandler transitions posted trips whose departure
// time has passed into Active status and moves their matched packages in
// transit. Each trip is processed in its own transaction so one failing
// trip does not block the rest.
type ActivateDueTripsCommandHandler struct {
	uowFactory ActivationUoWFactory
}

// NewActivateDueTripsCommandHandler creates a handler for trip activation.
func NewActivateDueTripsCommandHandler(uowFactory ActivationUoWFactory) ActivateDueTripsCommandHandler {
	return ActivateDueTripsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation command. Trip activation errors are
// collected and joined so a single bad trip does not stop the sweep.
func (h ActivateDueTripsCommandHandler) Handle(ctx context.Context, command ActivateDueTripsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	dueTrips, err := h.listDueTrips(ctx)
	if err != nil {
		return err
	}

	var activationErrs []error
	for _, dueTrip := range dueTrips {
		if err = h.activateTrip(ctx, dueTrip.ID()); err != nil {
			activationErrs = append(activationErrs, fmt.Errorf("trip %s: %w", dueTrip.ID(), err))
		}
	}

	return errors.Join(activationErrs...)
}

func (h ActivateDueTripsCommandHandler) listDueTrips(ctx context.Context) ([]*trip.Trip, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dueTrips, err := uow.TripRepository().GetAllDueForDeparture(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return dueTrips, nil
}

// activateTrip runs one trip's activation in its own transaction. The trip
// row is re-read under lock since another process may have activated it
// between the sweep and this call.
func (h ActivateDueTripsCommandHandler) activateTrip(ctx context.Context, tripID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tripRepo := uow.TripRepository()

	dueTrip, err := tripRepo.GetForUpdate(ctx, tripID)
	if err != nil {
		return err
	}

	if dueTrip.Status() != trip.Posted {
		return uow.Commit(ctx)
	}

	if err = dueTrip.Activate(); err != nil {
		return err
	}

	if err = tripRepo.Update(ctx, dueTrip); err != nil {
		return err
	}

	if err = h.startTransitForPackages(ctx, uow, dueTrip); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// startTransitForPackages moves every package matched with the trip into
// InTransit, recording a tracking event and notifying each sender.
func (h ActivateDueTripsCommandHandler) startTransitForPackages(
	ctx context.Context,
	uow ActivationUoW,
	dueTrip *trip.Trip,
) error {
	packageRepo := uow.PackageRepository()

	assigned, err := packageRepo.GetAllAssignedToTrip(ctx, dueTrip.ID())
	if err != nil {
		return err
	}

	for _, pkg := range assigned {
		if pkg.Status() != packages.Matched {
			continue
		}

		if err = pkg.StartTransit(); err != nil {
			return err
		}

		if err = packageRepo.Update(ctx, pkg); err != nil {
			return err
		}

		event, eventErr := tracking.NewEvent(kernel.NewUUID(), pkg.ID(), tracking.EventInTransit,
			fmt.Sprintf("Trip %q departed", dueTrip.Title()),
			dueTrip.Origin().String(), time.Now())
		if eventErr != nil {
			return eventErr
		}

		if err = uow.TrackingRepository().Add(ctx, event); err != nil {
			return err
		}

		packageID := pkg.ID()
		tripID := dueTrip.ID()
		senderNote, noteErr := notification.NewNotification(kernel.NewUUID(), pkg.SenderID(),
			notification.TypeTripDeparted, "Package in transit",
			fmt.Sprintf("Trip %q departed with your package %q", dueTrip.Title(), pkg.Title()),
			&packageID, &tripID, time.Now())
		if noteErr != nil {
			return noteErr
		}

		if err = uow.NotificationRepository().Add(ctx, senderNote); err != nil {
			return err
		}
	}

	return nil
}
