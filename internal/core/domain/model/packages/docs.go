// Package packages contains the Package aggregate: a shipment request
// posted by a sender, its declared dimensions, and the lifecycle state
// machine that governs posting, matching with a trip, transit, delivery,
// cancellation, and disputes. The Go package is named "packages" because
// "package" is a keyword.
package packages
