package ports

import (
	"context"

	"parcel-tracking-service/internal/domain"
)

// Port: a boundary for the contact inbox.
type ContactRepository interface {
	// List all messages, oldest first.
	ListMessages(ctx context.Context) ([]domain.ContactMessage, error)

	// Fetch one message by id. Returns domain.ErrNotFound when absent.
	GetMessage(ctx context.Context, id int64) (domain.ContactMessage, error)

	// Store a new submission. The message carries its final id and date.
	InsertMessage(ctx context.Context, m domain.ContactMessage) error
}
