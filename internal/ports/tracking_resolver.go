package ports

import (
	"context"

	"parcel-tracking-service/internal/domain"
)

// Port: a boundary for resolving public tracking codes.
// Backed by the seed fixture, the SQLite store, or the external tracking
// backend over HTTP.
type TrackingResolver interface {
	// Resolve looks up a record by exact, case-sensitive code match.
	// Returns domain.ErrNotFound on a miss.
	Resolve(ctx context.Context, code string) (domain.TrackingRecord, error)

	// ListByEmail returns the records belonging to a logged-in account.
	// An empty email means "the authenticated account as a whole" for
	// backends that scope by credential rather than address.
	ListByEmail(ctx context.Context, email string) ([]domain.TrackingRecord, error)
}
