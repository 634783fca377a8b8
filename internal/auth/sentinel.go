package auth

import (
	"errors"

	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/ports"
)

// DefaultSentinel is the placeholder credential the first client build
// treated as proof of admin privilege.
const DefaultSentinel = "admin"

// ErrUnknownToken reports a credential that verified to no identity.
var ErrUnknownToken = errors.New("auth: unknown token")

// SentinelVerifier preserves the legacy placeholder check: a token equal to
// the sentinel is an admin, any other non-empty token is a plain user, and
// an absent token is a guest. Admin status is a pure function of the token
// value. Only intended for fixture-mode runs; production uses JWT.
type SentinelVerifier struct {
	Sentinel string
}

func NewSentinelVerifier(sentinel string) *SentinelVerifier {
	if sentinel == "" {
		sentinel = DefaultSentinel
	}
	return &SentinelVerifier{Sentinel: sentinel}
}

func (v *SentinelVerifier) Verify(token string) (ports.Identity, error) {
	switch {
	case token == "":
		return ports.Identity{Role: domain.RoleGuest}, ErrUnknownToken
	case token == v.Sentinel:
		return ports.Identity{Role: domain.RoleAdmin}, nil
	default:
		// User tokens are the bare email, so it round-trips as the identity.
		return ports.Identity{Role: domain.RoleUser, Email: token}, nil
	}
}

// Issue hands the caller a token that round-trips through Verify with the
// requested role and, for user tokens, the email. The sentinel itself
// encodes no email, so admin identities come back without one.
func (v *SentinelVerifier) Issue(email string, role domain.Role) (string, error) {
	if role.IsAdmin() {
		return v.Sentinel, nil
	}
	if email == "" {
		return "", errors.New("auth: email is required for user tokens")
	}
	return email, nil
}
