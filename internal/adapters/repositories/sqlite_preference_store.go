package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"parcel-tracking-service/internal/domain"
)

// SQLite-backed implementation of the PreferenceStore port.
type SqlitePreferenceStore struct{ DB *sql.DB }

func NewSqlitePreferenceStore(db *sql.DB) *SqlitePreferenceStore {
	return &SqlitePreferenceStore{DB: db}
}

func (s *SqlitePreferenceStore) GetPreferences(ctx context.Context, email string) (domain.Preferences, error) {
	if s.DB == nil {
		return domain.Preferences{}, errors.New("sqlite preference store: DB is nil")
	}

	var p domain.Preferences
	var dark int
	err := s.DB.QueryRowContext(ctx,
		`SELECT lang, dark_mode FROM preferences WHERE email = ?;`, email).Scan(&p.Lang, &dark)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultPreferences(), nil
	}
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("get preferences for %q: %w", email, err)
	}
	p.DarkMode = dark != 0
	return p, nil
}

func (s *SqlitePreferenceStore) PutPreferences(ctx context.Context, email string, p domain.Preferences) error {
	if s.DB == nil {
		return errors.New("sqlite preference store: DB is nil")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	dark := 0
	if p.DarkMode {
		dark = 1
	}
	query := `
	INSERT OR REPLACE INTO preferences (email, lang, dark_mode)
	VALUES (?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, query, email, p.Lang, dark); err != nil {
		return fmt.Errorf("put preferences for %q: %w", email, err)
	}
	return nil
}
