package trip

import (
	"fmt"

	"amenade/internal/pkg/errs"
)

// Status represents the lifecycle state of a trip.
//
// State transitions:
//
//	Posted ──> Active ──> Completed
//	  │
//	  └──> Cancelled
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Posted means the trip is published and accepting package assignments.
	Posted

	// Active means the traveler has departed.
	Active

	// Completed means the trip finished.
	Completed

	// Cancelled means the traveler withdrew the trip.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Posted:    "POSTED",
		Active:    "ACTIVE",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Posted:    "POSTED",
		Active:    "ACTIVE",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
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

// ValidateAcceptsPackages checks that the trip can still take assignments.
// Only Posted trips accept packages.
func (s Status) ValidateAcceptsPackages() error {
	if s != Posted {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept packages", s.String()),
		)
	}
	return nil
}

// Activate transitions the status to Active.
// Only Posted trips can depart.
func (s Status) Activate() (Status, error) {
	if s != Posted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to activate", s.String()),
		)
	}
	return Active, nil
}

// Complete transitions the status to Completed.
// Only Active trips can complete.
func (s Status) Complete() (Status, error) {
	if s != Active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
// Only Posted trips can be cancelled; an active trip must complete.
func (s Status) Cancel() (Status, error) {
	if s != Posted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
