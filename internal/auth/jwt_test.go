package auth

import (
	"testing"
	"time"

	"parcel-tracking-service/internal/domain"
)

func testConfig(now time.Time) JWTConfig {
	return JWTConfig{
		Secret: []byte("test-secret"),
		Issuer: "parcel-tracking-service",
		TTL:    time.Hour,
		Now:    func() time.Time { return now },
	}
}

func TestJWTIssueAndVerify(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	j := NewJWT(testConfig(now))

	token, err := j.Issue("ana@email.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := j.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !id.Role.IsAdmin() {
		t.Fatalf("role = %v, want admin", id.Role)
	}
	if id.Email != "ana@email.com" {
		t.Fatalf("email = %q", id.Email)
	}
}

func TestJWTVerifyExpired(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	j := NewJWT(testConfig(issued))

	token, err := j.Issue("ana@email.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	late := NewJWT(testConfig(issued.Add(2 * time.Hour)))
	id, err := late.Verify(token)
	if err == nil {
		t.Fatal("expected error for expired token")
	}
	if id.Role != domain.RoleGuest {
		t.Fatalf("expired token must degrade to guest, got %v", id.Role)
	}
}

func TestJWTVerifyGarbage(t *testing.T) {
	j := NewJWT(testConfig(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)))

	for _, token := range []string{"", "   ", "not.a.token", "admin"} {
		id, err := j.Verify(token)
		if err == nil {
			t.Errorf("Verify(%q): expected error", token)
		}
		if id.Role != domain.RoleGuest {
			t.Errorf("Verify(%q): role = %v, want guest", token, id.Role)
		}
	}
}

func TestJWTVerifyWrongSecret(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	j := NewJWT(testConfig(now))

	token, err := j.Issue("ana@email.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := testConfig(now)
	other.Secret = []byte("different-secret")
	if _, err := NewJWT(other).Verify(token); err == nil {
		t.Fatal("expected error for wrong signing secret")
	}
}

func TestSentinelVerifier(t *testing.T) {
	v := NewSentinelVerifier("")

	cases := []struct {
		token string
		want  domain.Role
	}{
		{"admin", domain.RoleAdmin},
		{"anything-else", domain.RoleUser},
		{"Admin", domain.RoleUser}, // exact match only
		{"", domain.RoleGuest},
	}

	for _, tc := range cases {
		id, _ := v.Verify(tc.token)
		if id.Role != tc.want {
			t.Errorf("Verify(%q) role = %v, want %v", tc.token, id.Role, tc.want)
		}
	}
}
