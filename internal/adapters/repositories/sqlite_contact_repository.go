package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"parcel-tracking-service/internal/domain"
)

// SQLite-backed implementation of the ContactRepository port.
type SqliteContactRepository struct{ DB *sql.DB }

func NewSqliteContactRepository(db *sql.DB) *SqliteContactRepository {
	return &SqliteContactRepository{DB: db}
}

func (s *SqliteContactRepository) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite contact repository: DB is nil")
	}

	query := `
	SELECT id, name, email, message, date
	FROM contact_messages
	ORDER BY date, id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: query: %w", err)
	}
	defer rows.Close()

	msgs := make([]domain.ContactMessage, 0, 16)
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("list contact messages: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contact messages: row iteration: %w", err)
	}

	return msgs, nil
}

func (s *SqliteContactRepository) GetMessage(ctx context.Context, id int64) (domain.ContactMessage, error) {
	if s.DB == nil {
		return domain.ContactMessage{}, errors.New("sqlite contact repository: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx,
		`SELECT id, name, email, message, date FROM contact_messages WHERE id = ?;`, id)
	m, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ContactMessage{}, fmt.Errorf("contact message %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.ContactMessage{}, fmt.Errorf("get contact message %d: %w", id, err)
	}
	return m, nil
}

func (s *SqliteContactRepository) InsertMessage(ctx context.Context, m domain.ContactMessage) error {
	if s.DB == nil {
		return errors.New("sqlite contact repository: DB is nil")
	}
	if err := m.Validate(); err != nil {
		return err
	}

	query := `
	INSERT INTO contact_messages (id, name, email, message, date)
	VALUES (?, ?, ?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, query,
		m.ID, m.Name, m.Email, m.Message, m.Date.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("insert contact message id=%d: %w", m.ID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (domain.ContactMessage, error) {
	var m domain.ContactMessage
	var date string
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &date); err != nil {
		return domain.ContactMessage{}, err
	}
	parsed, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return domain.ContactMessage{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	m.Date = parsed
	return m, nil
}
