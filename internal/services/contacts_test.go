package services

import (
	"context"
	"testing"
	"time"

	"parcel-tracking-service/internal/domain"
)

type fakeContactRepo struct {
	messages []domain.ContactMessage
}

func (r *fakeContactRepo) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return r.messages, nil
}

func (r *fakeContactRepo) GetMessage(ctx context.Context, id int64) (domain.ContactMessage, error) {
	for _, m := range r.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.ContactMessage{}, domain.ErrNotFound
}

func (r *fakeContactRepo) InsertMessage(ctx context.Context, m domain.ContactMessage) error {
	r.messages = append(r.messages, m)
	return nil
}

func TestContactServiceSubmit(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)
	svc.Now = fixedClock(1_700_000_000_000)

	m, err := svc.Submit(context.Background(), "  João Silva ", "joao@email.com", "Where is my parcel?")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if m.ID != 1_700_000_000_000 {
		t.Fatalf("expected id derived from submission time, got %d", m.ID)
	}
	if m.Name != "João Silva" {
		t.Fatalf("expected trimmed name, got %q", m.Name)
	}
	if !m.Date.Equal(time.UnixMilli(1_700_000_000_000).UTC()) {
		t.Fatalf("unexpected date %v", m.Date)
	}
	if len(repo.messages) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(repo.messages))
	}
}

func TestContactServiceSubmitSameMillisecond(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)
	svc.Now = fixedClock(1_700_000_000_000)

	first, err := svc.Submit(context.Background(), "João", "joao@email.com", "first")
	if err != nil {
		t.Fatalf("Submit first: %v", err)
	}
	second, err := svc.Submit(context.Background(), "Ana", "ana@email.com", "second")
	if err != nil {
		t.Fatalf("Submit second: %v", err)
	}

	if second.ID != first.ID+1 {
		t.Fatalf("expected second id bumped to %d, got %d", first.ID+1, second.ID)
	}
	if len(repo.messages) != 2 {
		t.Fatalf("expected 2 stored messages, got %d", len(repo.messages))
	}
}

func TestContactServiceSubmitValidation(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{})
	svc.Now = fixedClock(1)

	cases := []struct {
		name, email, message string
	}{
		{"", "joao@email.com", "hello"},
		{"João", "not-an-email", "hello"},
		{"João", "joao@email.com", ""},
	}
	for _, c := range cases {
		if _, err := svc.Submit(context.Background(), c.name, c.email, c.message); !domain.IsValidation(err) {
			t.Fatalf("expected validation error for %+v, got %v", c, err)
		}
	}
}
