package ports

import (
	"context"

	"parcel-tracking-service/internal/domain"
)

// Port: a boundary for per-account display preferences.
type PreferenceStore interface {
	// Get returns the stored preferences, or the defaults when the
	// account has never saved any.
	GetPreferences(ctx context.Context, email string) (domain.Preferences, error)

	// Put stores the preferences, overwriting any previous value.
	PutPreferences(ctx context.Context, email string, p domain.Preferences) error
}
