package i18n

import (
	"testing"
	"time"

	"parcel-tracking-service/internal/domain"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		in   string
		want Lang
	}{
		{"pt", PT},
		{"pt-BR", PT},
		{"en", EN},
		{"en-US", EN},
		{"fr", PT},
		{"", PT},
		{"not-a-tag!", PT},
	}

	for _, tc := range cases {
		if got := Match(tc.in); got != tc.want {
			t.Errorf("Match(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve(PT, "tracking.title"); got != "Rastreio de Encomendas" {
		t.Fatalf("pt title = %q", got)
	}
	if got := Resolve(EN, "tracking.title"); got != "Order Tracking" {
		t.Fatalf("en title = %q", got)
	}
	// unknown keys fall back to the key itself
	if got := Resolve(EN, "tracking.bogus"); got != "tracking.bogus" {
		t.Fatalf("fallback = %q", got)
	}
}

func TestResolveSameKeysBothLanguages(t *testing.T) {
	for key := range messages[PT] {
		if _, ok := messages[EN][key]; !ok {
			t.Errorf("key %q missing from the English table", key)
		}
	}
	for key := range messages[EN] {
		if _, ok := messages[PT][key]; !ok {
			t.Errorf("key %q missing from the Portuguese table", key)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusLabel(PT, domain.StatusTransit); got != "Em trânsito" {
		t.Fatalf("pt transit = %q", got)
	}
	if got := StatusLabel(EN, domain.StatusDelivered); got != "Delivered" {
		t.Fatalf("en delivered = %q", got)
	}
	// unmatched statuses render as the raw value
	if got := StatusLabel(EN, domain.Status("warehouse")); got != "warehouse" {
		t.Fatalf("raw fallback = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 6, 13, 8, 41, 0, 0, time.UTC)
	if got := FormatDate(PT, ts); got != "13/06/2025 08:41" {
		t.Fatalf("pt date = %q", got)
	}
	if got := FormatDate(EN, ts); got != "Jun 13, 2025 8:41 AM" {
		t.Fatalf("en date = %q", got)
	}
}
