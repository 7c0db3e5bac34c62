package ports

import (
	"context"
)

// RateLimiter throttles repeated operations on a keyed resource within a
// rolling time window. Keys are caller-defined, for example an assignment
// attempt key combining user and package identifiers.
type RateLimiter interface {
	// Allow records an attempt for key and reports whether it is within
	// the configured limit. Attempts older than the window expire.
	Allow(ctx context.Context, key string) (bool, error)
}
