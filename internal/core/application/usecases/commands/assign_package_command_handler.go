package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"amenade/internal/core/domain/model/chat"
	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/notification"
	"amenade/internal/core/domain/model/packages"
	"amenade/internal/core/domain/model/safety"
	"amenade/internal/core/domain/model/tracking"
	"amenade/internal/core/domain/model/trip"
	"amenade/internal/core/domain/services"
	"amenade/internal/core/ports"
	"amenade/internal/pkg/errs"
)

// ErrPackageAlreadyAssigned is returned when the package already has a trip.
// The assignment performs no mutation.
var ErrPackageAlreadyAssigned = errors.New("package is already assigned to a trip")

// AssignmentResult is the outcome of a successful assignment: the matched
// package, the trip with its reduced available space, and the notification
// chat for the pair.
type AssignmentResult struct {
	Package *packages.Package
	Trip    *trip.Trip
	Chat    *chat.Chat
}

// AssignPackageCommandHandler orchestrates the package-to-trip assignment.
// Locks both rows, re-validates the preconditions against committed state,
// applies the match and records the side effects (chat, notifications,
// tracking, safety audit) within a single transaction.
//
// Example:
//
//	handler := NewAssignPackageCommandHandler(uowFactory, capacityPolicy)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrPackageAlreadyAssigned):
//	    log.Println("Package was taken by another trip")
//	case errors.Is(err, services.ErrInsufficientCapacity):
//	    log.Println("Trip is full")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignPackageCommandHandler struct {
	uowFactory     AssignmentUoWFactory
	capacityPolicy services.CapacityPolicy
}

// NewAssignPackageCommandHandler creates a handler for assignment operations.
// Requires an AssignmentUoWFactory for transactional updates and the capacity
// policy deciding whether a trip can accept a package's weight.
func NewAssignPackageCommandHandler(
	uowFactory AssignmentUoWFactory,
	capacityPolicy services.CapacityPolicy,
) AssignPackageCommandHandler {
	return AssignPackageCommandHandler{
		uowFactory:     uowFactory,
		capacityPolicy: capacityPolicy,
	}
}

// Handle processes the assignment command.
//
// Both the package and the trip are read with row-level write locks, so the
// already-assigned and capacity checks hold against committed state even
// when two requests race for the same package or the last of a trip's
// space. Either every mutation commits or none do.
func (h AssignPackageCommandHandler) Handle(
	ctx context.Context,
	command AssignPackageCommand,
) (AssignmentResult, error) {
	if err := command.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()
	tripRepo := uow.TripRepository()

	pkg, err := packageRepo.GetForUpdate(ctx, command.PackageID())
	if err != nil {
		return AssignmentResult{}, err
	}

	assignedTrip, err := tripRepo.GetForUpdate(ctx, command.TripID())
	if err != nil {
		return AssignmentResult{}, err
	}

	if pkg.Trip() != nil {
		return AssignmentResult{}, ErrPackageAlreadyAssigned
	}

	if err = h.capacityPolicy.Reserve(assignedTrip, pkg); err != nil {
		return AssignmentResult{}, err
	}

	if err = pkg.AssignToTrip(assignedTrip.ID()); err != nil {
		return AssignmentResult{}, err
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return AssignmentResult{}, err
	}

	if err = tripRepo.Update(ctx, assignedTrip); err != nil {
		return AssignmentResult{}, err
	}

	notificationChat, err := h.findOrCreateChat(ctx, uow.ChatRepository(), pkg, assignedTrip)
	if err != nil {
		return AssignmentResult{}, err
	}

	notificationRepo := uow.NotificationRepository()

	if command.NotifyTarget() == NotifyPackage {
		if err = h.recordPackageSideEffects(ctx, uow.TrackingRepository(), notificationRepo, pkg, assignedTrip); err != nil {
			return AssignmentResult{}, err
		}
	}

	if err = h.notifyTraveler(ctx, notificationRepo, pkg, assignedTrip); err != nil {
		return AssignmentResult{}, err
	}

	if err = h.recordConfirmation(ctx, uow.SafetyRepository(), command); err != nil {
		return AssignmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignmentResult{}, err
	}

	return AssignmentResult{
		Package: pkg,
		Trip:    assignedTrip,
		Chat:    notificationChat,
	}, nil
}

// findOrCreateChat returns the notification chat for the (package, trip)
// pair, creating one with the sender as initial participant when none
// exists. Re-running an assignment never duplicates the thread.
func (h AssignPackageCommandHandler) findOrCreateChat(
	ctx context.Context,
	chatRepo ports.ChatRepository,
	pkg *packages.Package,
	assignedTrip *trip.Trip,
) (*chat.Chat, error) {
	existing, err := chatRepo.GetByTypeAndPair(ctx, chat.TypeNotification, pkg.ID(), assignedTrip.ID())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := chat.NewChat(kernel.NewUUID(), chat.TypeNotification,
		pkg.ID(), assignedTrip.ID(), pkg.SenderID())
	if err != nil {
		return nil, err
	}

	if err = chatRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}

// recordPackageSideEffects appends a MATCHED tracking event with the trip's
// title and origin snapshot, and notifies the package's sender.
func (h AssignPackageCommandHandler) recordPackageSideEffects(
	ctx context.Context,
	trackingRepo ports.TrackingRepository,
	notificationRepo ports.NotificationRepository,
	pkg *packages.Package,
	assignedTrip *trip.Trip,
) error {
	event, err := tracking.NewEvent(kernel.NewUUID(), pkg.ID(), tracking.EventMatched,
		fmt.Sprintf("Package matched with trip %q", assignedTrip.Title()),
		assignedTrip.Origin().String(), time.Now())
	if err != nil {
		return err
	}

	if err = trackingRepo.Add(ctx, event); err != nil {
		return err
	}

	packageID := pkg.ID()
	tripID := assignedTrip.ID()
	senderNote, err := notification.NewNotification(kernel.NewUUID(), pkg.SenderID(),
		notification.TypePackageMatched, "Package matched",
		fmt.Sprintf("Your package %q was matched with trip %q", pkg.Title(), assignedTrip.Title()),
		&packageID, &tripID, time.Now())
	if err != nil {
		return err
	}

	return notificationRepo.Add(ctx, senderNote)
}

func (h AssignPackageCommandHandler) notifyTraveler(
	ctx context.Context,
	notificationRepo ports.NotificationRepository,
	pkg *packages.Package,
	assignedTrip *trip.Trip,
) error {
	packageID := pkg.ID()
	tripID := assignedTrip.ID()

	travelerNote, err := notification.NewNotification(kernel.NewUUID(), assignedTrip.TravelerID(),
		notification.TypeTripAssignment, "New package assigned",
		fmt.Sprintf("Package %q was assigned to your trip %q", pkg.Title(), assignedTrip.Title()),
		&packageID, &tripID, time.Now())
	if err != nil {
		return err
	}

	return notificationRepo.Add(ctx, travelerNote)
}

// recordConfirmation stores the safety audit record attributed to the
// acting user.
func (h AssignPackageCommandHandler) recordConfirmation(
	ctx context.Context,
	safetyRepo ports.SafetyRepository,
	command AssignPackageCommand,
) error {
	confirmation, err := safety.NewConfirmation(kernel.NewUUID(),
		command.PackageID(), command.TripID(), command.ActorID(),
		command.ConfirmationType(), command.Confirmations(), time.Now())
	if err != nil {
		return err
	}

	return safetyRepo.Add(ctx, confirmation)
}
