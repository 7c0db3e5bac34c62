// Package notification contains the Notification record: a user-facing
// event created as a side effect of marketplace operations. Notifications
// are persisted rows; external delivery (email, push) happens outside the
// transaction that records them.
package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/pkg/errs"
	"amenade/internal/pkg/guard"
)

// Type classifies a notification.
type Type int

const (
	// TypeUnknown represents an invalid or undefined notification type.
	TypeUnknown Type = iota

	// TypePackageMatched tells a sender their package was assigned to a trip.
	TypePackageMatched

	// TypeTripAssignment tells a traveler a package was assigned to their trip.
	TypeTripAssignment

	// TypePackageUnassigned tells a traveler a package was removed from their trip.
	TypePackageUnassigned

	// TypeTripDeparted tells a sender the carrying trip has departed.
	TypeTripDeparted
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:           "UNKNOWN",
		TypePackageMatched:    "PACKAGE_MATCHED",
		TypeTripAssignment:    "TRIP_ASSIGNMENT",
		TypePackageUnassigned: "PACKAGE_UNASSIGNED",
		TypeTripDeparted:      "TRIP_DEPARTED",
	}
}

// Validate rejects TypeUnknown and out-of-range values.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("notificationType",
			fmt.Errorf("%d is not a valid notification type", t))
	}
	return nil
}

// String returns the persisted name of the notification type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// ErrNotificationIsNotConstructed is returned when using an improperly
// initialized Notification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification constructor",
)

// Notification is an immutable user-facing event record. Only its read
// state changes after creation, and that is managed outside this core.
type Notification struct {
	id               kernel.UUID
	recipientID      kernel.UUID
	notificationType Type
	title            string
	message          string
	packageID        *kernel.UUID
	tripID           *kernel.UUID
	createdAt        time.Time

	guard guard.ConstructorGuard
}

// NewNotification creates a notification for a recipient, optionally
// referencing the package and trip it concerns.
func NewNotification(
	id kernel.UUID,
	recipientID kernel.UUID,
	notificationType Type,
	title string,
	message string,
	packageID *kernel.UUID,
	tripID *kernel.UUID,
	createdAt time.Time,
) (*Notification, error) {
	if err := errors.Join(
		id.Validate(),
		recipientID.Validate(),
		notificationType.Validate(),
	); err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if packageID != nil {
		if err := packageID.Validate(); err != nil {
			return nil, err
		}
	}
	if tripID != nil {
		if err := tripID.Validate(); err != nil {
			return nil, err
		}
	}
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return &Notification{
		id:               id,
		recipientID:      recipientID,
		notificationType: notificationType,
		title:            title,
		message:          strings.TrimSpace(message),
		packageID:        packageID,
		tripID:           tripID,
		createdAt:        createdAt,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Notification was constructed through NewNotification.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// RecipientID returns the user the notification addresses.
func (n *Notification) RecipientID() kernel.UUID { return n.recipientID }

// NotificationType returns the event classification.
func (n *Notification) NotificationType() Type { return n.notificationType }

// Title returns the short headline.
func (n *Notification) Title() string { return n.title }

// Message returns the body text, possibly empty.
func (n *Notification) Message() string { return n.message }

// PackageID returns the referenced package, or nil.
func (n *Notification) PackageID() *kernel.UUID { return n.packageID }

// TripID returns the referenced trip, or nil.
func (n *Notification) TripID() *kernel.UUID { return n.tripID }

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
