package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"parcel-tracking-service/internal/seed"
)

// Initialize the SQLite database schema.
//
// Shipments keep an explicit position column so list order survives a
// round-trip; tracking records store no current status of their own, it
// is always read off the last history event, which makes the
// status-equals-last-entry invariant structural.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createUsersQuery := `
	CREATE TABLE IF NOT EXISTS users (
		email TEXT PRIMARY KEY
	);
	`

	createShipmentsQuery := `
	CREATE TABLE IF NOT EXISTS shipments (
		user_email TEXT NOT NULL REFERENCES users(email),
		id INTEGER NOT NULL,
		code TEXT NOT NULL,
		status TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (user_email, id)
	);
	`

	createContactsQuery := `
	CREATE TABLE IF NOT EXISTS contact_messages (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		date TEXT NOT NULL
	);
	`

	createTrackingQuery := `
	CREATE TABLE IF NOT EXISTS tracking_records (
		code TEXT PRIMARY KEY,
		recipient TEXT NOT NULL
	);
	`

	createTrackingEventsQuery := `
	CREATE TABLE IF NOT EXISTS tracking_events (
		code TEXT NOT NULL REFERENCES tracking_records(code),
		position INTEGER NOT NULL,
		status TEXT NOT NULL,
		date TEXT NOT NULL,
		PRIMARY KEY (code, position)
	);
	`

	createPreferencesQuery := `
	CREATE TABLE IF NOT EXISTS preferences (
		email TEXT PRIMARY KEY,
		lang TEXT NOT NULL,
		dark_mode INTEGER NOT NULL
	);
	`

	createShipmentIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_shipments_user_position
	ON shipments(user_email, position);
	`

	statements := []string{
		createUsersQuery,
		createShipmentsQuery,
		createContactsQuery,
		createTrackingQuery,
		createTrackingEventsQuery,
		createPreferencesQuery,
		createShipmentIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedFixture populates the database with the demo fixture. Existing rows
// with matching keys are replaced, so re-running on startup is safe.
func SeedFixture(db *sql.DB, fix seed.Fixture) error {
	if db == nil {
		return errors.New("seed fixture: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed fixture: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	userStmt, err := tx.Prepare(`INSERT OR REPLACE INTO users (email) VALUES (?);`)
	if err != nil {
		return fmt.Errorf("seed fixture: prepare user insert: %w", err)
	}
	defer userStmt.Close()

	shipmentStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO shipments (user_email, id, code, status, position)
	VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed fixture: prepare shipment insert: %w", err)
	}
	defer shipmentStmt.Close()

	for _, u := range fix.Users {
		if _, err := userStmt.Exec(u.Email); err != nil {
			return fmt.Errorf("seed fixture: insert user %q: %w", u.Email, err)
		}
		for pos, s := range u.Shipments {
			if _, err := shipmentStmt.Exec(u.Email, s.ID, s.Code, string(s.Status), pos); err != nil {
				return fmt.Errorf("seed fixture: insert shipment %d for %q: %w", s.ID, u.Email, err)
			}
		}
	}

	contactStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO contact_messages (id, name, email, message, date)
	VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed fixture: prepare contact insert: %w", err)
	}
	defer contactStmt.Close()

	for _, m := range fix.Contacts {
		if _, err := contactStmt.Exec(m.ID, m.Name, m.Email, m.Message, m.Date.UTC().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("seed fixture: insert contact %d: %w", m.ID, err)
		}
	}

	recordStmt, err := tx.Prepare(`INSERT OR REPLACE INTO tracking_records (code, recipient) VALUES (?, ?);`)
	if err != nil {
		return fmt.Errorf("seed fixture: prepare tracking insert: %w", err)
	}
	defer recordStmt.Close()

	eventStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO tracking_events (code, position, status, date)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed fixture: prepare tracking event insert: %w", err)
	}
	defer eventStmt.Close()

	for _, r := range fix.Tracking {
		if _, err := recordStmt.Exec(r.Code, r.Recipient); err != nil {
			return fmt.Errorf("seed fixture: insert tracking %q: %w", r.Code, err)
		}
		for pos, ev := range r.History {
			if _, err := eventStmt.Exec(r.Code, pos, string(ev.Status), ev.Date.UTC().Format(time.RFC3339)); err != nil {
				return fmt.Errorf("seed fixture: insert tracking event %q #%d: %w", r.Code, pos, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed fixture: commit tx: %w", err)
	}

	return nil
}
