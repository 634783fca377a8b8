package memory

import (
	"context"
	"fmt"
	"sort"

	"parcel-tracking-service/internal/domain"
)

// Resolve matches codes exactly, case included. This mirrors the public
// lookup contract: "br123456789pt" is not "BR123456789PT".
func (s *Store) Resolve(ctx context.Context, code string) (domain.TrackingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.tracking[code]
	if !ok {
		return domain.TrackingRecord{}, fmt.Errorf("tracking %q: %w", code, domain.ErrNotFound)
	}
	return cloneRecord(r), nil
}

// ListByEmail returns every fixture record regardless of email, matching
// what the mock-backed client showed any logged-in visitor. The fixture
// carries no code-to-account mapping to filter on.
func (s *Store) ListByEmail(ctx context.Context, email string) ([]domain.TrackingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.TrackingRecord, 0, len(s.tracking))
	for _, r := range s.tracking {
		out = append(out, cloneRecord(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

// PutRecord stores or replaces a tracking record after validating its
// history invariants. Used by seeding and by tests.
func (s *Store) PutRecord(ctx context.Context, r domain.TrackingRecord) error {
	if err := r.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracking[r.Code] = cloneRecord(r)
	return nil
}
