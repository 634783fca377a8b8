package domain

import (
	"fmt"
	"time"
)

// TrackingEvent is one entry in a shipment's movement history.
type TrackingEvent struct {
	Status Status
	Date   time.Time
}

// TrackingRecord is the public view of a shipment, looked up by code.
// History is append-only and chronological; the record's current Status
// always equals the status of the last history entry.
type TrackingRecord struct {
	Code      string
	Status    Status
	Recipient string
	History   []TrackingEvent
}

// Validate checks the record invariants. It is called when records are
// loaded from seed data or a backing store, so a bad fixture fails fast
// instead of serving inconsistent history.
func (r TrackingRecord) Validate() error {
	if r.Code == "" {
		return &ValidationError{Field: "code", Reason: "must not be empty"}
	}
	if len(r.History) == 0 {
		return &ValidationError{Field: "history", Reason: "must have at least one entry"}
	}
	for i, ev := range r.History {
		if !ev.Status.Valid() {
			return &ValidationError{
				Field:  "history",
				Reason: fmt.Sprintf("entry %d has unknown status %q", i, string(ev.Status)),
			}
		}
		if i > 0 && ev.Date.Before(r.History[i-1].Date) {
			return &ValidationError{
				Field:  "history",
				Reason: fmt.Sprintf("entry %d predates entry %d", i, i-1),
			}
		}
	}
	if last := r.History[len(r.History)-1]; r.Status != last.Status {
		return &ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("record status %q does not match last history entry %q", r.Status, last.Status),
		}
	}
	return nil
}

// AppendEvent adds a movement entry and advances the record's current status.
// Timestamps must not go backwards. Status regressions (e.g. delivered back
// to pending) are allowed; operators correct mistakes through the same path.
func (r *TrackingRecord) AppendEvent(ev TrackingEvent) error {
	if !ev.Status.Valid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", string(ev.Status))}
	}
	if n := len(r.History); n > 0 && ev.Date.Before(r.History[n-1].Date) {
		return &ValidationError{Field: "date", Reason: "predates last history entry"}
	}
	r.History = append(r.History, ev)
	r.Status = ev.Status
	return nil
}

// LastUpdate returns the timestamp of the most recent history entry.
func (r TrackingRecord) LastUpdate() time.Time {
	if len(r.History) == 0 {
		return time.Time{}
	}
	return r.History[len(r.History)-1].Date
}
