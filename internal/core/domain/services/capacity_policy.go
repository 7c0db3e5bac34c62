package services

import (
	"errors"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/packages"
	"amenade/internal/core/domain/model/trip"
)

// ErrInsufficientCapacity is returned when a trip's remaining space cannot
// accommodate a package's declared weight while enforcement is enabled.
var ErrInsufficientCapacity = errors.New("trip has insufficient capacity for package")

// CapacityPolicy is a domain service deciding whether a trip can accept a
// package's weight, and reserving that weight against the trip's available
// space.
//
// Business rules:
//   - Packages with undeclared weight are always accepted and reserve nothing
//   - With enforcement enabled, a package heavier than the trip's remaining
//     space is rejected
//   - With enforcement disabled, any package is accepted; the reservation
//     floors the trip's remaining space at zero so it never goes negative
type CapacityPolicy struct {
	enforce bool
}

// NewCapacityPolicy creates a CapacityPolicy. enforce controls whether
// reservations exceeding the trip's remaining space are rejected.
func NewCapacityPolicy(enforce bool) CapacityPolicy {
	return CapacityPolicy{enforce: enforce}
}

// Enforced reports whether capacity enforcement is active.
func (p CapacityPolicy) Enforced() bool {
	return p.enforce
}

// CanAccept reports whether weight fits into the available space under this
// policy. Undeclared weights always fit, and a disabled policy accepts
// everything.
func (p CapacityPolicy) CanAccept(available kernel.Weight, weight kernel.Weight) bool {
	if !p.enforce {
		return true
	}
	return weight.CanFit(available)
}

// Reserve deducts the package's declared weight from the trip's available
// space. It returns ErrInsufficientCapacity when enforcement is enabled and
// the weight does not fit.
func (p CapacityPolicy) Reserve(t *trip.Trip, pkg *packages.Package) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := pkg.Validate(); err != nil {
		return err
	}

	weight := pkg.Dimensions().Weight()
	if !p.CanAccept(t.AvailableSpace(), weight) {
		return ErrInsufficientCapacity
	}

	return t.ReserveSpace(weight, !p.enforce)
}

// Release returns the package's declared weight to the trip's available
// space after an unassignment.
func (p CapacityPolicy) Release(t *trip.Trip, pkg *packages.Package) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := pkg.Validate(); err != nil {
		return err
	}

	t.ReleaseSpace(pkg.Dimensions().Weight())
	return nil
}
