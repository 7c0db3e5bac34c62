// Package kernel provides core domain primitives shared across the
// marketplace domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Weight: a value object for package weight and trip capacity in kilograms
//   - Address: a value object for pickup, delivery, origin, and destination places
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
