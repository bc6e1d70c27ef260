package mocks

import (
	"context"
	"time"

	"github.com/mgithinji/shoplist-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, identity auth.Identity) (string, error)

	// GenerateTokenWithExpiryFn allows test cases to mock the
	// GenerateTokenWithExpiry behavior
	GenerateTokenWithExpiryFn func(ctx context.Context, identity auth.Identity, lifetime time.Duration) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	Claims      *auth.Claims
	ValidateErr error
}

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(
	ctx context.Context,
	identity auth.Identity,
) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, identity)
	}
	return m.Token, m.Err
}

// GenerateTokenWithExpiry implements the auth.JWTService interface
func (m *MockJWTService) GenerateTokenWithExpiry(
	ctx context.Context,
	identity auth.Identity,
	lifetime time.Duration,
) (string, error) {
	if m.GenerateTokenWithExpiryFn != nil {
		return m.GenerateTokenWithExpiryFn(ctx, identity, lifetime)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
