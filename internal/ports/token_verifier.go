package ports

import "parcel-tracking-service/internal/domain"

// Identity is the result of verifying a credential token.
// Email may be empty for credentials that carry no address claim
// (the legacy sentinel token has none).
type Identity struct {
	Role  domain.Role
	Email string
}

// Port: a boundary for credential verification. Verify never fails hard:
// a malformed, expired or unknown token yields a guest identity and the
// verification error for logging.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// Port: a boundary for credential issuance, the other half of login.
type TokenIssuer interface {
	Issue(email string, role domain.Role) (string, error)
}
