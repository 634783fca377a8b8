package services

import (
	"context"
	"fmt"

	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/ports"
)

// TrackingService answers public tracking lookups and the logged-in
// "my shipments" listing.
type TrackingService struct {
	Resolver ports.TrackingResolver
}

func NewTrackingService(resolver ports.TrackingResolver) *TrackingService {
	return &TrackingService{Resolver: resolver}
}

// Resolve looks up a record by its exact code. Codes are matched
// case-sensitively with no normalization; "br123456789pt" is a miss.
func (s *TrackingService) Resolve(ctx context.Context, code string) (domain.TrackingRecord, error) {
	if code == "" {
		return domain.TrackingRecord{}, &domain.ValidationError{Field: "code", Reason: "must not be empty"}
	}
	rec, err := s.Resolver.Resolve(ctx, code)
	if err != nil {
		return domain.TrackingRecord{}, fmt.Errorf("resolve %q: %w", code, err)
	}
	return rec, nil
}

// MyTrackings lists the records visible to an authenticated identity.
func (s *TrackingService) MyTrackings(ctx context.Context, id ports.Identity) ([]domain.TrackingRecord, error) {
	if !id.Role.LoggedIn() {
		return nil, &domain.ValidationError{Field: "token", Reason: "login required"}
	}
	recs, err := s.Resolver.ListByEmail(ctx, id.Email)
	if err != nil {
		return nil, fmt.Errorf("list trackings for %q: %w", id.Email, err)
	}
	return recs, nil
}
