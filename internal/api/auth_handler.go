package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mgithinji/shoplist-api/internal/api/shared"
	"github.com/mgithinji/shoplist-api/internal/service/auth"
	"github.com/mgithinji/shoplist-api/internal/service/identity"
	"github.com/mgithinji/shoplist-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	identityService  *identity.Service
	accountStore     store.AccountStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	identityService *identity.Service,
	accountStore store.AccountStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		identityService:  identityService,
		accountStore:     accountStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		validator:        validator.New(),
	}
}

// Register handles POST /auth/register.
// A successful registration creates the account and its profile atomically
// and responds with the composite profile view.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	profile, err := h.identityService.Register(r.Context(), identity.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Username already exists")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, profile)
}

// Login handles POST /auth/login.
// Valid credentials yield a bearer token; the token is also cached on the
// profile and the account's last-login timestamp is stamped.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	account, err := h.accountStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("failed to get account by username", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(account.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), auth.Identity{
		AccountID: account.ID,
		Username:  account.Username,
		Superuser: account.Superuser,
	})
	if err != nil {
		slog.Error("failed to generate token", "error", err, "account_id", account.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	if err := h.identityService.RecordLogin(r.Context(), account.ID, token); err != nil {
		// Login still succeeds; the timestamp and cache are bookkeeping.
		slog.Warn("failed to record login", "error", err, "account_id", account.ID)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

// Logout handles GET /auth/logout.
// Token validation is stateless, so logout only clears the profile's cached
// token and confirms success.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	if err := h.identityService.ClearCachedToken(r.Context(), caller.AccountID); err != nil {
		slog.Warn("failed to clear cached token", "error", err, "account_id", caller.AccountID)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Logged out"})
}

// ResetPassword handles PUT /auth/reset-password.
// The caller resets their own password; a missing password is a 400.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req ResetPasswordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if err := h.identityService.ResetPassword(r.Context(), caller.Username, req.Password); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Password updated"})
}
