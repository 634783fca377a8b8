package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"parcel-tracking-service/internal/domain"
)

const deliveredPayload = `{
	"code": "BR123456789PT",
	"status": "delivered",
	"recipient": "João Silva",
	"history": [
		{"status": "pending", "date": "2025-06-11T10:21:00Z"},
		{"status": "transit", "date": "2025-06-12T16:04:00Z"},
		{"status": "delivered", "date": "2025-06-13T08:41:00Z"}
	]
}`

func TestClientResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tracking/BR123456789PT" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("authorization header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(deliveredPayload))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "test-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec, err := c.Resolve(context.Background(), "BR123456789PT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Status != domain.StatusDelivered {
		t.Fatalf("status = %q, want delivered", rec.Status)
	}
	if len(rec.History) != 3 {
		t.Fatalf("history length = %d, want 3", len(rec.History))
	}
}

// A body larger than the transport's read-ahead buffer is only readable
// while the per-call timeout context is still alive; decoding must finish
// before that context is released.
func TestClientResolveReadsLargeBody(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`{"code":"BR123456789PT","status":"delivered","recipient":"João Silva","history":[`)
	const entries = 50000
	for i := 0; i < entries; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(`{"status":"delivered","date":"2025-06-13T08:41:00Z"}`)
	}
	sb.WriteString(`]}`)
	payload := sb.String()
	if len(payload) < 2<<20 {
		t.Fatalf("payload too small to exercise a streamed body: %d bytes", len(payload))
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, payload)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec, err := c.Resolve(context.Background(), "BR123456789PT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.History) != entries {
		t.Fatalf("history length = %d, want %d", len(rec.History), entries)
	}
}

func TestClientResolveNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.Resolve(context.Background(), "ZZZ000")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestClientResolveRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "try again", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(deliveredPayload))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec, err := c.Resolve(context.Background(), "BR123456789PT")
	if err != nil {
		t.Fatalf("unexpected error after retries: %v", err)
	}
	if rec.Code != "BR123456789PT" {
		t.Fatalf("code = %q", rec.Code)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("upstream called %d times, want 3", got)
	}
}

func TestClientResolveRejectsInconsistentRecord(t *testing.T) {
	// status claims transit but the last history entry says delivered
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": "BR123456789PT",
			"status": "transit",
			"recipient": "João Silva",
			"history": [{"status": "delivered", "date": "2025-06-13T08:41:00Z"}]
		}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := c.Resolve(context.Background(), "BR123456789PT"); err == nil {
		t.Fatal("expected validation error for inconsistent record")
	}
}

func TestClientListByEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/my-trackings" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[" + deliveredPayload + "]"))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs, err := c.ListByEmail(context.Background(), "ana@email.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("record count = %d, want 1", len(recs))
	}
}
