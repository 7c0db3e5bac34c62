package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/notification"
	"amenade/internal/core/domain/model/tracking"
	"amenade/internal/core/domain/services"
)

// ErrPackageNotAssigned is returned when unassigning a package that has no
// trip. The operation performs no mutation.
var ErrPackageNotAssigned = errors.New("package is not assigned to a trip")

// UnassignPackageCommandHandler reverses an assignment: clears the package's
// trip reference, returns its weight to the trip's available space, records
// an UNASSIGNED tracking event and notifies the traveler, all within a
// single transaction.
type UnassignPackageCommandHandler struct {
	uowFactory     AssignmentUoWFactory
	capacityPolicy services.CapacityPolicy
}

// NewUnassignPackageCommandHandler creates a handler for unassignment operations.
func NewUnassignPackageCommandHandler(
	uowFactory AssignmentUoWFactory,
	capacityPolicy services.CapacityPolicy,
) UnassignPackageCommandHandler {
	return UnassignPackageCommandHandler{
		uowFactory:     uowFactory,
		capacityPolicy: capacityPolicy,
	}
}

// Handle processes the unassignment command. Both rows are locked so a
// concurrent assignment cannot observe the package in a half-cleared state.
func (h UnassignPackageCommandHandler) Handle(ctx context.Context, command UnassignPackageCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	tripRepo := uow.TripRepository()

	pkg, err := packageRepo.GetForUpdate(ctx, command.PackageID())
	if err != nil {
		return err
	}

	if pkg.Trip() == nil {
		return ErrPackageNotAssigned
	}

	assignedTrip, err := tripRepo.GetForUpdate(ctx, *pkg.Trip())
	if err != nil {
		return err
	}

	if err = h.capacityPolicy.Release(assignedTrip, pkg); err != nil {
		return err
	}

	if err = pkg.UnassignFromTrip(); err != nil {
		return err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return err
	}

	if err = tripRepo.Update(ctx, assignedTrip); err != nil {
		return err
	}

	event, err := tracking.NewEvent(kernel.NewUUID(), pkg.ID(), tracking.EventUnassigned,
		fmt.Sprintf("Package removed from trip %q", assignedTrip.Title()), "", time.Now())
	if err != nil {
		return err
	}

	if err = uow.TrackingRepository().Add(ctx, event); err != nil {
		return err
	}

	packageID := pkg.ID()
	tripID := assignedTrip.ID()
	travelerNote, err := notification.NewNotification(kernel.NewUUID(), assignedTrip.TravelerID(),
		notification.TypePackageUnassigned, "Package unassigned",
		fmt.Sprintf("Package %q was removed from your trip %q", pkg.Title(), assignedTrip.Title()),
		&packageID, &tripID, time.Now())
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, travelerNote); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
