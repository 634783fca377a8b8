package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"parcel-tracking-service/internal/config"
	"parcel-tracking-service/internal/platform/db"
	"parcel-tracking-service/internal/seed"
)

// dbtool initializes and seeds a shared Postgres instance with the demo
// fixture. The server itself runs on SQLite or the in-memory store; this
// tool exists for multi-instance deployments that point at Postgres.
func main() {
	config.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	fix, err := loadFixture()
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Initializing database schema...")
	if err := initSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := seedFixture(conn, fix); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

func loadFixture() (seed.Fixture, error) {
	if path := os.Getenv("SEED_PATH"); path != "" {
		return seed.LoadFile(path)
	}
	return seed.Load()
}

func initSchema(conn *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			email TEXT PRIMARY KEY
		);`,
		`CREATE TABLE IF NOT EXISTS shipments (
			user_email TEXT NOT NULL REFERENCES users(email),
			id BIGINT NOT NULL,
			code TEXT NOT NULL,
			status TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (user_email, id)
		);`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			message TEXT NOT NULL,
			date TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS tracking_records (
			code TEXT PRIMARY KEY,
			recipient TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS tracking_events (
			code TEXT NOT NULL REFERENCES tracking_records(code),
			position INTEGER NOT NULL,
			status TEXT NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (code, position)
		);`,
		`CREATE TABLE IF NOT EXISTS preferences (
			email TEXT PRIMARY KEY,
			lang TEXT NOT NULL,
			dark_mode BOOLEAN NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_shipments_user_position
		ON shipments(user_email, position);`,
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

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

// seedFixture upserts the fixture so re-running against a live database
// refreshes the demo rows without duplicating them.
func seedFixture(conn *sql.DB, fix seed.Fixture) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("seed fixture: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, u := range fix.Users {
		if _, err := tx.Exec(
			`INSERT INTO users (email) VALUES ($1) ON CONFLICT (email) DO NOTHING;`,
			u.Email,
		); err != nil {
			return fmt.Errorf("seed fixture: insert user %q: %w", u.Email, err)
		}
		for pos, s := range u.Shipments {
			if _, err := tx.Exec(
				`INSERT INTO shipments (user_email, id, code, status, position)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (user_email, id)
				DO UPDATE SET code = EXCLUDED.code, status = EXCLUDED.status, position = EXCLUDED.position;`,
				u.Email, s.ID, s.Code, string(s.Status), pos,
			); err != nil {
				return fmt.Errorf("seed fixture: insert shipment %d for %q: %w", s.ID, u.Email, err)
			}
		}
	}

	for _, m := range fix.Contacts {
		if _, err := tx.Exec(
			`INSERT INTO contact_messages (id, name, email, message, date)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id)
			DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email,
				message = EXCLUDED.message, date = EXCLUDED.date;`,
			m.ID, m.Name, m.Email, m.Message, m.Date.UTC().Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("seed fixture: insert contact %d: %w", m.ID, err)
		}
	}

	for _, r := range fix.Tracking {
		if _, err := tx.Exec(
			`INSERT INTO tracking_records (code, recipient) VALUES ($1, $2)
			ON CONFLICT (code) DO UPDATE SET recipient = EXCLUDED.recipient;`,
			r.Code, r.Recipient,
		); err != nil {
			return fmt.Errorf("seed fixture: insert tracking %q: %w", r.Code, err)
		}
		for pos, ev := range r.History {
			if _, err := tx.Exec(
				`INSERT INTO tracking_events (code, position, status, date)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (code, position)
				DO UPDATE SET status = EXCLUDED.status, date = EXCLUDED.date;`,
				r.Code, pos, string(ev.Status), ev.Date.UTC().Format(time.RFC3339),
			); err != nil {
				return fmt.Errorf("seed fixture: insert tracking event %q #%d: %w", r.Code, pos, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed fixture: commit tx: %w", err)
	}

	return nil
}
