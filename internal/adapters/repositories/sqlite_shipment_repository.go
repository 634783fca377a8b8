package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"parcel-tracking-service/internal/domain"
)

// SQLite-backed implementation of the ShipmentRepository port.
type SqliteShipmentRepository struct{ DB *sql.DB }

func NewSqliteShipmentRepository(db *sql.DB) *SqliteShipmentRepository {
	return &SqliteShipmentRepository{DB: db}
}

// Return all accounts with their shipments, ordered by email and by
// the position each shipment was inserted at.
func (s *SqliteShipmentRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite shipment repository: DB is nil")
	}

	query := `
	SELECT
		u.email,
		s.id,
		s.code,
		s.status
	FROM users u
	LEFT JOIN shipments s ON s.user_email = u.email
	ORDER BY u.email, s.position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: query: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0, 8)
	byEmail := make(map[string]int)
	for rows.Next() {
		var email string
		var id sql.NullInt64
		var code, status sql.NullString
		if err := rows.Scan(&email, &id, &code, &status); err != nil {
			return nil, fmt.Errorf("list users: scan row: %w", err)
		}

		idx, ok := byEmail[email]
		if !ok {
			users = append(users, domain.User{Email: email})
			idx = len(users) - 1
			byEmail[email] = idx
		}
		if id.Valid {
			users[idx].Shipments = append(users[idx].Shipments, domain.Shipment{
				ID:     id.Int64,
				Code:   code.String,
				Status: domain.Status(status.String),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: row iteration: %w", err)
	}

	return users, nil
}

func (s *SqliteShipmentRepository) GetUser(ctx context.Context, email string) (domain.User, error) {
	if s.DB == nil {
		return domain.User{}, errors.New("sqlite shipment repository: DB is nil")
	}

	var exists int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(1) FROM users WHERE email = ?;`, email).Scan(&exists)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: query users table: %w", err)
	}
	if exists == 0 {
		return domain.User{}, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
	}

	query := `
	SELECT id, code, status
	FROM shipments
	WHERE user_email = ?
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: query shipments table: %w", err)
	}
	defer rows.Close()

	user := domain.User{Email: email}
	for rows.Next() {
		var shipment domain.Shipment
		var status string
		if err := rows.Scan(&shipment.ID, &shipment.Code, &status); err != nil {
			return domain.User{}, fmt.Errorf("get user: scan row: %w", err)
		}
		shipment.Status = domain.Status(status)
		user.Shipments = append(user.Shipments, shipment)
	}
	if err := rows.Err(); err != nil {
		return domain.User{}, fmt.Errorf("get user: row iteration: %w", err)
	}

	return user, nil
}

// Append a shipment at the end of the account's list.
func (s *SqliteShipmentRepository) AddShipment(ctx context.Context, email string, shipment domain.Shipment) error {
	if s.DB == nil {
		return errors.New("sqlite shipment repository: DB is nil")
	}
	if err := shipment.Validate(); err != nil {
		return err
	}
	if _, err := s.GetUser(ctx, email); err != nil {
		return err
	}

	var dup int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM shipments WHERE user_email = ? AND id = ?;`, email, shipment.ID).Scan(&dup)
	if err != nil {
		return fmt.Errorf("add shipment: check id: %w", err)
	}
	if dup > 0 {
		return &domain.ValidationError{Field: "id", Reason: fmt.Sprintf("shipment id %d already exists", shipment.ID)}
	}

	query := `
	INSERT INTO shipments (user_email, id, code, status, position)
	VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM shipments WHERE user_email = ?));
	`
	if _, err := s.DB.ExecContext(ctx, query, email, shipment.ID, shipment.Code, string(shipment.Status), email); err != nil {
		return fmt.Errorf("add shipment id=%d: %w", shipment.ID, err)
	}
	return nil
}

// Replace the shipment in place; position is untouched so order holds.
func (s *SqliteShipmentRepository) UpdateShipment(ctx context.Context, email string, shipment domain.Shipment) error {
	if s.DB == nil {
		return errors.New("sqlite shipment repository: DB is nil")
	}
	if err := shipment.Validate(); err != nil {
		return err
	}

	query := `
	UPDATE shipments
	SET code = ?, status = ?
	WHERE user_email = ? AND id = ?;
	`
	res, err := s.DB.ExecContext(ctx, query, shipment.Code, string(shipment.Status), email, shipment.ID)
	if err != nil {
		return fmt.Errorf("update shipment id=%d: %w", shipment.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update shipment id=%d: rows affected: %w", shipment.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("shipment %d: %w", shipment.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete the shipment. Deleting an absent id is a no-op.
func (s *SqliteShipmentRepository) RemoveShipment(ctx context.Context, email string, id int64) error {
	if s.DB == nil {
		return errors.New("sqlite shipment repository: DB is nil")
	}

	if _, err := s.DB.ExecContext(ctx,
		`DELETE FROM shipments WHERE user_email = ? AND id = ?;`, email, id); err != nil {
		return fmt.Errorf("remove shipment id=%d: %w", id, err)
	}
	return nil
}
