package auth

import (
	"errors"
	"testing"

	"parcel-tracking-service/internal/domain"
)

func TestSentinelVerify(t *testing.T) {
	v := NewSentinelVerifier("")

	id, err := v.Verify("admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !id.Role.IsAdmin() {
		t.Fatalf("role = %v, want admin", id.Role)
	}

	_, err = v.Verify("")
	if !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("expected ErrUnknownToken for empty token, got %v", err)
	}
}

func TestSentinelUserTokenRoundTripsEmail(t *testing.T) {
	v := NewSentinelVerifier("")

	token, err := v.Issue("ana@email.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := v.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Role != domain.RoleUser {
		t.Fatalf("role = %v, want user", id.Role)
	}
	if id.Email != "ana@email.com" {
		t.Fatalf("email = %q, want ana@email.com", id.Email)
	}
}
