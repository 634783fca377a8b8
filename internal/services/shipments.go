package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/ports"
)

// ShipmentService owns the write path for the admin shipment panel.
// All validation lives here and in the repositories, not in the UI:
// a shipment with an empty code or an unknown status is rejected no
// matter who the caller is.
type ShipmentService struct {
	Repo ports.ShipmentRepository

	// Now is swappable for deterministic ids in tests.
	Now func() time.Time
}

func NewShipmentService(repo ports.ShipmentRepository) *ShipmentService {
	return &ShipmentService{Repo: repo, Now: time.Now}
}

// ListUsers returns every account for the admin user selector.
func (s *ShipmentService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.Repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser returns one account with its shipments.
func (s *ShipmentService) GetUser(ctx context.Context, email string) (domain.User, error) {
	if err := requireEmail(email); err != nil {
		return domain.User{}, err
	}
	u, err := s.Repo.GetUser(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user %q: %w", email, err)
	}
	return u, nil
}

// Add appends a new shipment to the selected account's list and returns it.
// The id is derived from the current time in milliseconds (the scheme the
// first client build used) and bumped past any collision, so uniqueness
// within the account's list holds even for rapid consecutive adds.
func (s *ShipmentService) Add(ctx context.Context, email, code string, status domain.Status) (domain.Shipment, error) {
	if err := requireEmail(email); err != nil {
		return domain.Shipment{}, err
	}

	shipment := domain.Shipment{Code: code, Status: status}
	if err := shipment.Validate(); err != nil {
		return domain.Shipment{}, err
	}

	user, err := s.Repo.GetUser(ctx, email)
	if err != nil {
		return domain.Shipment{}, fmt.Errorf("add shipment for %q: %w", email, err)
	}

	id := s.Now().UnixMilli()
	for _, existing := range user.Shipments {
		if existing.ID >= id {
			id = existing.ID + 1
		}
	}
	shipment.ID = id

	if err := s.Repo.AddShipment(ctx, email, shipment); err != nil {
		return domain.Shipment{}, fmt.Errorf("add shipment for %q: %w", email, err)
	}
	return shipment, nil
}

// Update replaces the shipment with a matching id in place. Unlike the
// original client, a missing id is surfaced as a NotFound error instead of
// silently doing nothing.
func (s *ShipmentService) Update(ctx context.Context, email string, id int64, code string, status domain.Status) (domain.Shipment, error) {
	if err := requireEmail(email); err != nil {
		return domain.Shipment{}, err
	}

	shipment := domain.Shipment{ID: id, Code: code, Status: status}
	if err := shipment.Validate(); err != nil {
		return domain.Shipment{}, err
	}

	if err := s.Repo.UpdateShipment(ctx, email, shipment); err != nil {
		return domain.Shipment{}, fmt.Errorf("update shipment %d for %q: %w", id, email, err)
	}
	return shipment, nil
}

// Remove deletes the shipment with the given id. Removing an id that is
// not there is a no-op; delete is idempotent by design.
func (s *ShipmentService) Remove(ctx context.Context, email string, id int64) error {
	if err := requireEmail(email); err != nil {
		return err
	}
	if err := s.Repo.RemoveShipment(ctx, email, id); err != nil {
		return fmt.Errorf("remove shipment %d for %q: %w", id, email, err)
	}
	return nil
}

func requireEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &domain.ValidationError{Field: "email", Reason: "a user must be selected"}
	}
	return nil
}
