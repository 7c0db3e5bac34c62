// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the marketplace. It implements business
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - CapacityPolicy: A domain service deciding whether a trip can accept a package's weight
//
// Domain services coordinate between aggregates following Domain-Driven Design
// principles.
package services
