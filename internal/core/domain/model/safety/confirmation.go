// Package safety contains the consent checklist an actor must affirm
// before an assignment, and the immutable SafetyConfirmation audit record
// that captures who affirmed what and when.
package safety

import (
	"errors"
	"fmt"
	"time"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/pkg/errs"
	"amenade/internal/pkg/guard"
)

// ConfirmationType identifies the moment in the delivery workflow the
// checklist was affirmed at.
type ConfirmationType int

const (
	// ConfirmationUnknown represents an invalid or undefined confirmation type.
	ConfirmationUnknown ConfirmationType = iota

	// ConfirmationAssignment is affirmed when a package is assigned to a trip.
	ConfirmationAssignment

	// ConfirmationPickup is affirmed when the traveler picks up the package.
	ConfirmationPickup

	// ConfirmationDelivery is affirmed when the package is handed to the recipient.
	ConfirmationDelivery
)

func getConfirmationTypeStrings() map[ConfirmationType]string {
	return map[ConfirmationType]string{
		ConfirmationUnknown:    "UNKNOWN",
		ConfirmationAssignment: "ASSIGNMENT",
		ConfirmationPickup:     "PICKUP",
		ConfirmationDelivery:   "DELIVERY",
	}
}

// ConfirmationTypeFromString parses the wire form of a confirmation type.
func ConfirmationTypeFromString(s string) (ConfirmationType, error) {
	for t, str := range getConfirmationTypeStrings() {
		if str == s && t != ConfirmationUnknown {
			return t, nil
		}
	}
	return ConfirmationUnknown, errs.NewValueIsInvalidErrorWithCause("confirmationType",
		fmt.Errorf("%q is not a valid confirmation type", s))
}

// Validate rejects ConfirmationUnknown and out-of-range values.
func (t ConfirmationType) Validate() error {
	if t != ConfirmationAssignment && t != ConfirmationPickup && t != ConfirmationDelivery {
		return errs.NewValueIsInvalidErrorWithCause("confirmationType",
			fmt.Errorf("%d is not a valid confirmation type", t))
	}
	return nil
}

// String returns the persisted name of the confirmation type.
func (t ConfirmationType) String() string {
	if str, ok := getConfirmationTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// ConfirmationSet is the five-item checklist an actor affirms before an
// assignment proceeds. Every flag must be true for the set to be complete;
// a partially affirmed set blocks the operation.
type ConfirmationSet struct {
	LegalCompliance     bool
	DamageInspection    bool
	AccurateDescription bool
	SafetyMeasures      bool
	TermsAcceptance     bool
}

// IsComplete reports whether every checklist item was affirmed.
func (s ConfirmationSet) IsComplete() bool {
	return s.LegalCompliance &&
		s.DamageInspection &&
		s.AccurateDescription &&
		s.SafetyMeasures &&
		s.TermsAcceptance
}

// Missing lists the checklist items that were not affirmed, for
// field-level error detail.
func (s ConfirmationSet) Missing() []string {
	var missing []string
	if !s.LegalCompliance {
		missing = append(missing, "legalCompliance")
	}
	if !s.DamageInspection {
		missing = append(missing, "damageInspection")
	}
	if !s.AccurateDescription {
		missing = append(missing, "accurateDescription")
	}
	if !s.SafetyMeasures {
		missing = append(missing, "safetyMeasures")
	}
	if !s.TermsAcceptance {
		missing = append(missing, "termsAcceptance")
	}
	return missing
}

// ErrConfirmationIsNotConstructed is returned when using an improperly
// initialized Confirmation.
var ErrConfirmationIsNotConstructed = errors.New(
	"safety Confirmation must be created via NewConfirmation constructor",
)

// Confirmation is the immutable audit record of an affirmed checklist:
// which (package, trip) pair it covers, who confirmed, at which workflow
// moment, and when.
type Confirmation struct {
	id               kernel.UUID
	packageID        kernel.UUID
	tripID           kernel.UUID
	confirmedBy      kernel.UUID
	confirmationType ConfirmationType
	confirmations    ConfirmationSet
	confirmedAt      time.Time

	guard guard.ConstructorGuard
}

// NewConfirmation creates a safety confirmation audit record.
// Only a complete checklist can be recorded; an incomplete set must be
// rejected before reaching this constructor, and is rejected here too.
func NewConfirmation(
	id kernel.UUID,
	packageID kernel.UUID,
	tripID kernel.UUID,
	confirmedBy kernel.UUID,
	confirmationType ConfirmationType,
	confirmations ConfirmationSet,
	confirmedAt time.Time,
) (*Confirmation, error) {
	if err := errors.Join(
		id.Validate(),
		packageID.Validate(),
		tripID.Validate(),
		confirmedBy.Validate(),
		confirmationType.Validate(),
	); err != nil {
		return nil, err
	}

	if !confirmations.IsComplete() {
		return nil, errs.NewValueIsInvalidErrorWithCause("confirmations",
			fmt.Errorf("checklist incomplete, missing: %v", confirmations.Missing()))
	}
	if confirmedAt.IsZero() {
		confirmedAt = time.Now()
	}

	return &Confirmation{
		id:               id,
		packageID:        packageID,
		tripID:           tripID,
		confirmedBy:      confirmedBy,
		confirmationType: confirmationType,
		confirmations:    confirmations,
		confirmedAt:      confirmedAt,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Confirmation was constructed through NewConfirmation.
func (c *Confirmation) Validate() error {
	if c == nil {
		return ErrConfirmationIsNotConstructed
	}
	return c.guard.Validate(ErrConfirmationIsNotConstructed)
}

// ID returns the confirmation's unique identifier.
func (c *Confirmation) ID() kernel.UUID { return c.id }

// PackageID returns the package the checklist covers.
func (c *Confirmation) PackageID() kernel.UUID { return c.packageID }

// TripID returns the trip the checklist covers.
func (c *Confirmation) TripID() kernel.UUID { return c.tripID }

// ConfirmedBy returns the user who affirmed the checklist.
func (c *Confirmation) ConfirmedBy() kernel.UUID { return c.confirmedBy }

// Type returns the workflow moment the checklist was affirmed at.
func (c *Confirmation) Type() ConfirmationType { return c.confirmationType }

// Confirmations returns the affirmed checklist.
func (c *Confirmation) Confirmations() ConfirmationSet { return c.confirmations }

// ConfirmedAt returns when the checklist was affirmed.
func (c *Confirmation) ConfirmedAt() time.Time { return c.confirmedAt }
