package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/ports"
)

// ErrInvalidCredentials reports a failed login. Handlers map it to a 401
// with a generic message; the reason is never echoed back.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles login and password-recovery requests.
//
// Credential checking is intentionally shallow: the operator account comes
// from the environment and regular accounts only need to exist in the user
// store. Real password storage belongs to the external identity backend
// this service will eventually delegate to; the token contract issued here
// will not change when that happens.
type AuthService struct {
	Users  ports.ShipmentRepository
	Tokens ports.TokenIssuer

	AdminEmail    string
	AdminPassword string
}

// Login verifies the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return "", &domain.ValidationError{Field: "email", Reason: "must be a valid e-mail address"}
	}
	if len(password) < 4 {
		return "", &domain.ValidationError{Field: "password", Reason: "must be at least 4 characters"}
	}

	role := domain.RoleUser
	if s.AdminEmail != "" && email == s.AdminEmail {
		if password != s.AdminPassword {
			return "", ErrInvalidCredentials
		}
		role = domain.RoleAdmin
	} else {
		if _, err := s.Users.GetUser(ctx, email); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return "", ErrInvalidCredentials
			}
			return "", fmt.Errorf("login %q: %w", email, err)
		}
	}

	token, err := s.Tokens.Issue(email, role)
	if err != nil {
		return "", fmt.Errorf("login %q: issue token: %w", email, err)
	}
	return token, nil
}

// Forgot handles a password-recovery request. The outcome is identical for
// known and unknown addresses so the endpoint cannot be used to probe for
// accounts.
func (s *AuthService) Forgot(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return &domain.ValidationError{Field: "email", Reason: "must be a valid e-mail address"}
	}

	if _, err := s.Users.GetUser(ctx, email); err == nil {
		// Mail delivery is owned by the external notification system.
		log.Printf("password reset requested email=%s", email)
	}
	return nil
}
