package packages

import (
	"fmt"

	"amenade/internal/pkg/errs"
)

// Status represents the lifecycle state of a package.
// It implements a state machine with defined transitions so packages
// follow the correct marketplace workflow.
//
// State transitions:
//
//	Draft ──> Posted ──> Matched ──> InTransit ──> Delivered
//	  │         │  ▲         │           │              │
//	  │         │  └─────────┘           └──> Disputed <┘
//	  └─────────┴──> Cancelled    (unassignment allowed)
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status of a freshly created package,
	// not yet visible to travelers.
	Draft

	// Posted means the package is published and waiting to be
	// assigned to a trip.
	Posted

	// Matched means the package has been assigned to a trip.
	Matched

	// InTransit means the carrying trip has departed.
	InTransit

	// Delivered means the package reached its recipient.
	Delivered

	// Cancelled means the sender withdrew the package before assignment.
	Cancelled

	// Disputed means delivery is contested and under review.
	Disputed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Draft:     "DRAFT",
		Posted:    "POSTED",
		Matched:   "MATCHED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
		Disputed:  "DISPUTED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "DRAFT",
		Posted:    "POSTED",
		Matched:   "MATCHED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
		Disputed:  "DISPUTED",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "UNKNOWN" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateCanHaveTrip validates the consistency between package status and
// trip assignment.
//
// Business rules:
//   - A package holding a trip reference must be Matched or later in the
//     lifecycle (Matched, InTransit, Delivered, Disputed).
//   - Matched and InTransit packages must hold a trip reference.
func (s Status) ValidateCanHaveTrip(hasTrip bool) error {
	if hasTrip && s != Matched && s != InTransit && s != Delivered && s != Disputed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a trip", s.String()),
		)
	}

	if !hasTrip && (s == Matched || s == InTransit) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no trip", s.String()),
		)
	}

	return nil
}

// Post transitions the status to Posted.
//
// Valid transitions:
//   - Draft -> Posted (publishing)
//   - Matched -> Posted (unassignment restores the posted state)
func (s Status) Post() (Status, error) {
	if s != Draft && s != Matched {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to post", s.String()),
		)
	}
	return Posted, nil
}

// Match transitions the status to Matched.
//
// Only Posted packages can be matched; a package already carrying an
// assignment or further along the lifecycle cannot be matched again.
func (s Status) Match() (Status, error) {
	if s != Posted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to match", s.String()),
		)
	}
	return Matched, nil
}

// StartTransit transitions the status to InTransit.
// Only Matched packages can enter transit.
func (s Status) StartTransit() (Status, error) {
	if s != Matched {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to start transit", s.String()),
		)
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered.
// Only InTransit packages can be delivered.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Only Draft and Posted packages can be cancelled; assigned packages must
// be unassigned first.
func (s Status) Cancel() (Status, error) {
	if s != Draft && s != Posted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}

// Dispute transitions the status to Disputed.
// Only InTransit and Delivered packages can be disputed.
func (s Status) Dispute() (Status, error) {
	if s != InTransit && s != Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to dispute", s.String()),
		)
	}
	return Disputed, nil
}
