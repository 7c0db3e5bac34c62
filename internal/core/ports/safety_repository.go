package ports

import (
	"context"

	"amenade/internal/core/domain/model/kernel"
	"amenade/internal/core/domain/model/safety"
)

// SafetyRepository defines the persistence contract for safety confirmation
// audit records. Confirmations are write-once.
type SafetyRepository interface {
	// Add persists a new safety confirmation record to storage.
	Add(ctx context.Context, record *safety.Confirmation) error

	// GetAllForPackage retrieves all confirmations recorded for a package
	// in chronological order.
	GetAllForPackage(ctx context.Context, packageID kernel.UUID) ([]*safety.Confirmation, error)
}
