package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated principal a token is issued for and the
// value recovered from a validated token. The superuser flag travels inside
// the signed claims so authorization decisions need no store lookup.
type Identity struct {
	AccountID uuid.UUID
	Username  string
	Superuser bool
}

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the identity using
	// the service's default lifetime.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, identity Identity) (string, error)

	// GenerateTokenWithExpiry creates a signed JWT access token with a
	// caller-chosen lifetime. Used where the default validity window does
	// not apply (e.g., short-lived tokens in test configuration).
	GenerateTokenWithExpiry(ctx context.Context, identity Identity, lifetime time.Duration) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Validation works purely from the token's signed contents; no stored
	// copy is consulted. Returns the claims if the token is valid, or an
	// error (ErrExpiredToken, ErrInvalidToken, ...) if validation fails.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// Identity is the principal the token was issued for.
	Identity Identity

	// Standard registered JWT claims
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
