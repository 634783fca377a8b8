package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"parcel-tracking-service/internal/domain"
)

// SQLite-backed implementation of the TrackingResolver port. The record's
// current status is always the last history event; there is no separate
// status column to drift out of sync.
type SqliteTrackingRepository struct{ DB *sql.DB }

func NewSqliteTrackingRepository(db *sql.DB) *SqliteTrackingRepository {
	return &SqliteTrackingRepository{DB: db}
}

func (s *SqliteTrackingRepository) Resolve(ctx context.Context, code string) (domain.TrackingRecord, error) {
	if s.DB == nil {
		return domain.TrackingRecord{}, errors.New("sqlite tracking repository: DB is nil")
	}

	var recipient string
	err := s.DB.QueryRowContext(ctx,
		`SELECT recipient FROM tracking_records WHERE code = ?;`, code).Scan(&recipient)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TrackingRecord{}, fmt.Errorf("tracking %q: %w", code, domain.ErrNotFound)
	}
	if err != nil {
		return domain.TrackingRecord{}, fmt.Errorf("resolve tracking: query record: %w", err)
	}

	record := domain.TrackingRecord{Code: code, Recipient: recipient}
	if err := s.loadHistory(ctx, &record); err != nil {
		return domain.TrackingRecord{}, err
	}
	return record, nil
}

func (s *SqliteTrackingRepository) ListByEmail(ctx context.Context, email string) ([]domain.TrackingRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite tracking repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT code, recipient FROM tracking_records ORDER BY code;`)
	if err != nil {
		return nil, fmt.Errorf("list trackings: query records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.TrackingRecord, 0, 8)
	for rows.Next() {
		var r domain.TrackingRecord
		if err := rows.Scan(&r.Code, &r.Recipient); err != nil {
			return nil, fmt.Errorf("list trackings: scan row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trackings: row iteration: %w", err)
	}

	for i := range records {
		if err := s.loadHistory(ctx, &records[i]); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func (s *SqliteTrackingRepository) loadHistory(ctx context.Context, record *domain.TrackingRecord) error {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT status, date FROM tracking_events WHERE code = ? ORDER BY position;`, record.Code)
	if err != nil {
		return fmt.Errorf("resolve tracking: query history for %q: %w", record.Code, err)
	}
	defer rows.Close()

	for rows.Next() {
		var status, date string
		if err := rows.Scan(&status, &date); err != nil {
			return fmt.Errorf("resolve tracking: scan history row: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339, date)
		if err != nil {
			return fmt.Errorf("resolve tracking: parse date %q: %w", date, err)
		}
		record.History = append(record.History, domain.TrackingEvent{
			Status: domain.Status(status),
			Date:   parsed,
		})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("resolve tracking: history iteration: %w", err)
	}

	if len(record.History) > 0 {
		record.Status = record.History[len(record.History)-1].Status
	}
	return nil
}
