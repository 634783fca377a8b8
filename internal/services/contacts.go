package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/ports"
)

// ContactService stores public contact submissions and serves the admin inbox.
// Messages are immutable once stored.
type ContactService struct {
	Repo ports.ContactRepository
	Now  func() time.Time

	mu     sync.Mutex
	lastID int64
}

func NewContactService(repo ports.ContactRepository) *ContactService {
	return &ContactService{Repo: repo, Now: time.Now}
}

// List returns all messages, oldest first.
func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	msgs, err := s.Repo.ListMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return msgs, nil
}

// View returns a single message by id.
func (s *ContactService) View(ctx context.Context, id int64) (domain.ContactMessage, error) {
	m, err := s.Repo.GetMessage(ctx, id)
	if err != nil {
		return domain.ContactMessage{}, fmt.Errorf("view contact message %d: %w", id, err)
	}
	return m, nil
}

// Submit validates and stores a contact form submission.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (domain.ContactMessage, error) {
	m := domain.ContactMessage{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Message: strings.TrimSpace(message),
		Date:    s.Now().UTC(),
	}
	if err := m.Validate(); err != nil {
		return domain.ContactMessage{}, err
	}
	m.ID = s.nextID(m.Date)

	if err := s.Repo.InsertMessage(ctx, m); err != nil {
		return domain.ContactMessage{}, fmt.Errorf("store contact message: %w", err)
	}
	return m, nil
}

// nextID derives an id from the submission time, bumped past the previous
// one so two submissions in the same millisecond never collide.
func (s *ContactService) nextID(at time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := at.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
