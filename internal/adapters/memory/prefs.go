package memory

import (
	"context"

	"parcel-tracking-service/internal/domain"
)

func (s *Store) GetPreferences(ctx context.Context, email string) (domain.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.prefs[email]; ok {
		return p, nil
	}
	return domain.DefaultPreferences(), nil
}

func (s *Store) PutPreferences(ctx context.Context, email string, p domain.Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[email] = p
	return nil
}
