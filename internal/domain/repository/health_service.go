package repository

import "context"

// HealthService abstracts a liveness probe against the backing store.
type HealthService interface {
	// CheckHealth runs a minimal no-op query. Errors are swallowed; the
	// boolean is the only signal.
	CheckHealth(ctx context.Context) bool
}
