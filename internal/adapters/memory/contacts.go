package memory

import (
	"context"
	"fmt"

	"parcel-tracking-service/internal/domain"
)

func (s *Store) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.ContactMessage(nil), s.contacts...), nil
}

func (s *Store) GetMessage(ctx context.Context, id int64) (domain.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.contacts {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.ContactMessage{}, fmt.Errorf("contact message %d: %w", id, domain.ErrNotFound)
}

func (s *Store) InsertMessage(ctx context.Context, m domain.ContactMessage) error {
	if err := m.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.contacts {
		if existing.ID == m.ID {
			return &domain.ValidationError{Field: "id", Reason: fmt.Sprintf("message id %d already exists", m.ID)}
		}
	}
	s.contacts = append(s.contacts, m)
	return nil
}
