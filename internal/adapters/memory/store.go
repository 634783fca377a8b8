// Package memory is the fixture-backed implementation of the repository
// ports. It is the default for local runs and the workhorse for tests;
// swapping it for the SQLite adapters changes nothing above the port line.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/seed"
)

// Store keeps all fixture data in process. A single mutex covers every
// collection; contention is irrelevant at admin-panel write rates and it
// keeps the invariants easy to reason about.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*domain.User
	emails   []string // sorted, for stable listing
	contacts []domain.ContactMessage
	tracking map[string]domain.TrackingRecord
	prefs    map[string]domain.Preferences
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{
		users:    make(map[string]*domain.User),
		tracking: make(map[string]domain.TrackingRecord),
		prefs:    make(map[string]domain.Preferences),
	}
}

// NewStoreFromFixture builds a store pre-populated with the seed fixture.
func NewStoreFromFixture(fix seed.Fixture) *Store {
	s := NewStore()
	for _, u := range fix.Users {
		user := u
		user.Shipments = append([]domain.Shipment(nil), u.Shipments...)
		s.users[u.Email] = &user
		s.emails = append(s.emails, u.Email)
	}
	sort.Strings(s.emails)
	s.contacts = append(s.contacts, fix.Contacts...)
	for _, r := range fix.Tracking {
		s.tracking[r.Code] = cloneRecord(r)
	}
	return s
}

// ListUsers returns all accounts ordered by email. Shipment slices are
// copied so callers cannot alias the store's state.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, 0, len(s.emails))
	for _, email := range s.emails {
		out = append(out, cloneUser(s.users[email]))
	}
	return out, nil
}

func (s *Store) GetUser(ctx context.Context, email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return domain.User{}, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
	}
	return cloneUser(u), nil
}

func (s *Store) AddShipment(ctx context.Context, email string, shipment domain.Shipment) error {
	if err := shipment.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok {
		return fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
	}
	if u.FindShipment(shipment.ID) != -1 {
		return &domain.ValidationError{Field: "id", Reason: fmt.Sprintf("shipment id %d already exists", shipment.ID)}
	}
	u.Shipments = append(u.Shipments, shipment)
	return nil
}

func (s *Store) UpdateShipment(ctx context.Context, email string, shipment domain.Shipment) error {
	if err := shipment.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok {
		return fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
	}
	i := u.FindShipment(shipment.ID)
	if i == -1 {
		return fmt.Errorf("shipment %d: %w", shipment.ID, domain.ErrNotFound)
	}
	u.Shipments[i] = shipment
	return nil
}

func (s *Store) RemoveShipment(ctx context.Context, email string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok {
		return fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
	}
	i := u.FindShipment(id)
	if i == -1 {
		return nil // idempotent
	}
	u.Shipments = append(u.Shipments[:i], u.Shipments[i+1:]...)
	return nil
}

func cloneUser(u *domain.User) domain.User {
	out := *u
	out.Shipments = append([]domain.Shipment(nil), u.Shipments...)
	return out
}

func cloneRecord(r domain.TrackingRecord) domain.TrackingRecord {
	out := r
	out.History = append([]domain.TrackingEvent(nil), r.History...)
	return out
}
