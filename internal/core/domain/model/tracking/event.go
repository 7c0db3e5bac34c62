// Package tracking contains the TrackingEvent record: an append-only audit
// entry on a package's delivery timeline. Events are never updated or
// deleted once written.
package tracking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/pkg/errs"
	"amenade/internal/pkg/guard"
)

// EventType classifies a tracking event.
type EventType int

const (
	// EventUnknown represents an invalid or undefined event type.
	EventUnknown EventType = iota

	// EventPosted records the package being published.
	EventPosted

	// EventMatched records the package being assigned to a trip.
	EventMatched

	// EventUnassigned records the package being removed from a trip.
	EventUnassigned

	// EventInTransit records the carrying trip departing.
	EventInTransit

	// EventDelivered records delivery to the recipient.
	EventDelivered
)

func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventUnknown:    "UNKNOWN",
		EventPosted:     "POSTED",
		EventMatched:    "MATCHED",
		EventUnassigned: "UNASSIGNED",
		EventInTransit:  "IN_TRANSIT",
		EventDelivered:  "DELIVERED",
	}
}

// Validate rejects EventUnknown and out-of-range values.
func (e EventType) Validate() error {
	if _, ok := getEventTypeStrings()[e]; !ok || e == EventUnknown {
		return errs.NewValueIsInvalidErrorWithCause("eventType",
			fmt.Errorf("%d is not a valid tracking event type", e))
	}
	return nil
}

// String returns the persisted name of the event type.
func (e EventType) String() string {
	if str, ok := getEventTypeStrings()[e]; ok {
		return str
	}
	return "UNKNOWN"
}

// ErrEventIsNotConstructed is returned when using an improperly initialized Event.
var ErrEventIsNotConstructed = errors.New("tracking Event must be created via NewEvent constructor")

// Event is an immutable entry on a package's tracking timeline. The
// location is a display snapshot taken at the moment the event occurred,
// so later address edits never rewrite history.
type Event struct {
	id          kernel.UUID
	packageID   kernel.UUID
	eventType   EventType
	description string
	location    string
	occurredAt  time.Time

	guard guard.ConstructorGuard
}

// NewEvent creates a tracking event for a package.
// The location snapshot may be empty when no place is relevant.
func NewEvent(
	id kernel.UUID,
	packageID kernel.UUID,
	eventType EventType,
	description string,
	location string,
	occurredAt time.Time,
) (*Event, error) {
	if err := errors.Join(
		id.Validate(),
		packageID.Validate(),
		eventType.Validate(),
	); err != nil {
		return nil, err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	return &Event{
		id:          id,
		packageID:   packageID,
		eventType:   eventType,
		description: description,
		location:    strings.TrimSpace(location),
		occurredAt:  occurredAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Event was constructed through NewEvent.
func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID { return e.id }

// PackageID returns the package this event belongs to.
func (e *Event) PackageID() kernel.UUID { return e.packageID }

// Type returns the event classification.
func (e *Event) Type() EventType { return e.eventType }

// Description returns the human-readable description.
func (e *Event) Description() string { return e.description }

// Location returns the location snapshot, possibly empty.
func (e *Event) Location() string { return e.location }

// OccurredAt returns when the event happened.
func (e *Event) OccurredAt() time.Time { return e.occurredAt }
