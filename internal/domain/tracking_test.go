package domain

import (
	"testing"
	"time"
)

func record() TrackingRecord {
	return TrackingRecord{
		Code:      "BR123456789PT",
		Status:    StatusDelivered,
		Recipient: "João Silva",
		History: []TrackingEvent{
			{Status: StatusPending, Date: time.Date(2025, 6, 11, 10, 21, 0, 0, time.UTC)},
			{Status: StatusTransit, Date: time.Date(2025, 6, 12, 16, 4, 0, 0, time.UTC)},
			{Status: StatusDelivered, Date: time.Date(2025, 6, 13, 8, 41, 0, 0, time.UTC)},
		},
	}
}

func TestTrackingRecordValidate(t *testing.T) {
	r := record()
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTrackingRecordValidateStatusMismatch(t *testing.T) {
	r := record()
	r.Status = StatusTransit

	err := r.Validate()
	if err == nil {
		t.Fatal("expected error for status not matching last history entry")
	}
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTrackingRecordValidateOutOfOrderHistory(t *testing.T) {
	r := record()
	r.History[2].Date = r.History[0].Date.Add(-time.Hour)

	if err := r.Validate(); err == nil {
		t.Fatal("expected error for out-of-order history")
	}
}

func TestTrackingRecordAppendEvent(t *testing.T) {
	r := record()
	r.Status = StatusTransit
	r.History = r.History[:2]

	ev := TrackingEvent{Status: StatusDelivered, Date: time.Date(2025, 6, 13, 8, 41, 0, 0, time.UTC)}
	if err := r.AppendEvent(ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Status != StatusDelivered {
		t.Fatalf("status = %q, want delivered", r.Status)
	}
	if len(r.History) != 3 {
		t.Fatalf("history length = %d, want 3", len(r.History))
	}
	if !r.LastUpdate().Equal(ev.Date) {
		t.Fatalf("last update = %v, want %v", r.LastUpdate(), ev.Date)
	}
}

func TestTrackingRecordAppendEventRejectsBackwardsTime(t *testing.T) {
	r := record()
	ev := TrackingEvent{Status: StatusContact, Date: r.History[0].Date}

	if err := r.AppendEvent(ev); err == nil {
		t.Fatal("expected error for timestamp before last entry")
	}
	if len(r.History) != 3 {
		t.Fatalf("history mutated on rejected append, length = %d", len(r.History))
	}
}
