// Package seed holds the demo fixture that stands in for a production
// database: two accounts with shipments, two contact messages and two
// tracking records. The same fixture feeds the in-memory store and the
// SQLite seeder, so both backends answer identically out of the box.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"parcel-tracking-service/internal/domain"
)

//go:embed fixture.json
var embeddedFixture []byte

type shipmentSeed struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Status string `json:"status"`
}

type userSeed struct {
	Email     string         `json:"email"`
	Shipments []shipmentSeed `json:"shipments"`
}

type contactSeed struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

type eventSeed struct {
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
}

type trackingSeed struct {
	Code      string      `json:"code"`
	Status    string      `json:"status"`
	Recipient string      `json:"recipient"`
	History   []eventSeed `json:"history"`
}

type fixtureFile struct {
	Users    []userSeed     `json:"users"`
	Contacts []contactSeed  `json:"contacts"`
	Tracking []trackingSeed `json:"tracking"`
}

// Fixture is the parsed and validated seed data.
type Fixture struct {
	Users    []domain.User
	Contacts []domain.ContactMessage
	Tracking []domain.TrackingRecord
}

// Load parses the embedded fixture.
func Load() (Fixture, error) {
	return parse(embeddedFixture)
}

// LoadFile parses a fixture from disk, for seeding with custom data.
func LoadFile(path string) (Fixture, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("load fixture: read %q: %w", path, err)
	}
	return parse(bytes)
}

func parse(raw []byte) (Fixture, error) {
	var file fixtureFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return Fixture{}, fmt.Errorf("load fixture: parse json: %w", err)
	}

	fix := Fixture{
		Users:    make([]domain.User, 0, len(file.Users)),
		Contacts: make([]domain.ContactMessage, 0, len(file.Contacts)),
		Tracking: make([]domain.TrackingRecord, 0, len(file.Tracking)),
	}

	for i, u := range file.Users {
		if u.Email == "" {
			return Fixture{}, fmt.Errorf("load fixture: user at index %d has no email", i)
		}
		user := domain.User{Email: u.Email, Shipments: make([]domain.Shipment, 0, len(u.Shipments))}
		ids := make(map[int64]struct{}, len(u.Shipments))
		for _, s := range u.Shipments {
			shipment := domain.Shipment{ID: s.ID, Code: s.Code, Status: domain.Status(s.Status)}
			if err := shipment.Validate(); err != nil {
				return Fixture{}, fmt.Errorf("load fixture: user %q shipment %d: %w", u.Email, s.ID, err)
			}
			if _, dup := ids[s.ID]; dup {
				return Fixture{}, fmt.Errorf("load fixture: user %q has duplicate shipment id %d", u.Email, s.ID)
			}
			ids[s.ID] = struct{}{}
			user.Shipments = append(user.Shipments, shipment)
		}
		fix.Users = append(fix.Users, user)
	}

	for _, c := range file.Contacts {
		msg := domain.ContactMessage{ID: c.ID, Name: c.Name, Email: c.Email, Message: c.Message, Date: c.Date}
		if err := msg.Validate(); err != nil {
			return Fixture{}, fmt.Errorf("load fixture: contact %d: %w", c.ID, err)
		}
		fix.Contacts = append(fix.Contacts, msg)
	}

	for _, tr := range file.Tracking {
		rec := domain.TrackingRecord{
			Code:      tr.Code,
			Status:    domain.Status(tr.Status),
			Recipient: tr.Recipient,
			History:   make([]domain.TrackingEvent, 0, len(tr.History)),
		}
		for _, ev := range tr.History {
			rec.History = append(rec.History, domain.TrackingEvent{Status: domain.Status(ev.Status), Date: ev.Date})
		}
		if err := rec.Validate(); err != nil {
			return Fixture{}, fmt.Errorf("load fixture: tracking %q: %w", tr.Code, err)
		}
		fix.Tracking = append(fix.Tracking, rec)
	}

	return fix, nil
}
