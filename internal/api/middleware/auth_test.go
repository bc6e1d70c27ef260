package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgithinji/shoplist-api/internal/mocks"
	"github.com/mgithinji/shoplist-api/internal/service/auth"
)

// identityEcho is a terminal handler that records the identity the
// middleware placed in the context.
func identityEcho(captured *auth.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity, ok := GetIdentity(r); ok {
			*captured = identity
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	validIdentity := auth.Identity{
		AccountID: uuid.New(),
		Username:  "groceryfan",
	}

	tests := []struct {
		name       string
		authHeader string
		jwtService *mocks.MockJWTService
		wantStatus int
	}{
		{
			name:       "valid bearer token",
			authHeader: "Bearer good-token",
			jwtService: &mocks.MockJWTService{
				Claims: &auth.Claims{Identity: validIdentity},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			authHeader: "",
			jwtService: &mocks.MockJWTService{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			jwtService: &mocks.MockJWTService{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no token after scheme",
			authHeader: "Bearer",
			jwtService: &mocks.MockJWTService{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer stale-token",
			jwtService: &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			jwtService: &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unexpected validation error",
			authHeader: "Bearer token",
			jwtService: &mocks.MockJWTService{ValidateErr: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var captured auth.Identity
			middleware := NewAuthMiddleware(tt.jwtService)
			handler := middleware.Authenticate(identityEcho(&captured))

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, validIdentity, captured)
			} else {
				assert.Equal(t, uuid.Nil, captured.AccountID, "identity must not leak past a rejected request")
			}
		})
	}
}

func TestAuthenticatePassesTokenThrough(t *testing.T) {
	t.Parallel()

	var seenToken string
	jwtService := &mocks.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			seenToken = tokenString
			return &auth.Claims{Identity: auth.Identity{AccountID: uuid.New()}}, nil
		},
	}

	middleware := NewAuthMiddleware(jwtService)
	handler := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer the-exact-token")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "the-exact-token", seenToken)
}
