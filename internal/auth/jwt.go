package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"

	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/ports"
)

// jwtEnv holds raw env values before post-parse validation.
type jwtEnv struct {
	Secret string        `env:"AUTH_JWT_SECRET"`
	Issuer string        `env:"AUTH_JWT_ISSUER" envDefault:"parcel-tracking-service"`
	TTL    time.Duration `env:"AUTH_JWT_TTL" envDefault:"24h"`
}

// JWTConfig defines how session tokens are signed and verified.
type JWTConfig struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	Now    func() time.Time
}

// LoadJWTConfigFromEnv reads token configuration from the environment.
func LoadJWTConfigFromEnv(now func() time.Time) (JWTConfig, error) {
	var raw jwtEnv
	if err := env.Parse(&raw); err != nil {
		return JWTConfig{}, fmt.Errorf("parse auth env: %w", err)
	}
	secret := strings.TrimSpace(raw.Secret)
	if secret == "" {
		return JWTConfig{}, fmt.Errorf("AUTH_JWT_SECRET is required")
	}
	if raw.TTL <= 0 {
		return JWTConfig{}, fmt.Errorf("AUTH_JWT_TTL must be positive")
	}
	if now == nil {
		now = time.Now
	}
	return JWTConfig{
		Secret: []byte(secret),
		Issuer: raw.Issuer,
		TTL:    raw.TTL,
		Now:    now,
	}, nil
}

// sessionClaims is the internal claims type used for JWT parsing.
type sessionClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// JWT issues and verifies HMAC-signed session tokens. The subject claim
// carries the account email, the role claim the authorization level.
type JWT struct {
	cfg JWTConfig
}

func NewJWT(cfg JWTConfig) *JWT {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &JWT{cfg: cfg}
}

// Issue signs a session token for the given account and role.
func (j *JWT) Issue(email string, role domain.Role) (string, error) {
	now := j.cfg.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.cfg.Issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.cfg.TTL)),
		},
		Role: role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token. Any failure (bad signature,
// expiry, wrong issuer, garbage input) yields a guest identity together
// with the error; callers treat the request as unauthenticated.
func (j *JWT) Verify(token string) (ports.Identity, error) {
	guest := ports.Identity{Role: domain.RoleGuest}

	token = strings.TrimSpace(token)
	if token == "" {
		return guest, ErrUnknownToken
	}

	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return j.cfg.Secret, nil
		},
		jwt.WithIssuer(j.cfg.Issuer),
		jwt.WithTimeFunc(j.cfg.Now),
	)
	if err != nil {
		return guest, fmt.Errorf("parse session token: %w", err)
	}
	if !parsed.Valid {
		return guest, fmt.Errorf("parse session token: token is not valid")
	}

	return ports.Identity{
		Role:  domain.ParseRole(claims.Role),
		Email: claims.Subject,
	}, nil
}
