package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mgithinji/shoplist-api/internal/api/shared"
	"github.com/mgithinji/shoplist-api/internal/platform/logger"
	"github.com/mgithinji/shoplist-api/internal/service/authz"
	"github.com/mgithinji/shoplist-api/internal/service/identity"
)

// UserHandler handles composite profile API requests.
type UserHandler struct {
	identityService *identity.Service
	policy          *authz.Policy
	validator       *validator.Validate
	logger          *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	identityService *identity.Service,
	policy *authz.Policy,
	log *slog.Logger,
) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		identityService: identityService,
		policy:          policy,
		validator:       validator.New(),
		logger:          log.With(slog.String("component", "user_handler")),
	}
}

// ListUsers handles GET /list/users.
// Superusers only; any other caller gets a 403.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	if err := h.policy.CanListAccounts(caller); err != nil {
		log.Debug("non-admin attempted to list users",
			slog.String("username", caller.Username))
		HandleAPIError(w, r, err, "")
		return
	}

	profiles, err := h.identityService.ListProfiles(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profiles)
}

// GetUser handles GET /users/{username}.
// Permitted for the user themselves and for superusers; everyone else gets
// a 401. A missing target user is a 404.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	username := chi.URLParam(r, "username")
	if err := h.policy.CanViewProfile(caller, username); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	profile, err := h.identityService.GetProfile(r.Context(), username)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// UpdateUser handles PUT /users/{username}.
// Sparse update: only the non-empty fields of the payload are applied.
// Same permission rule as GetUser.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	username := chi.URLParam(r, "username")
	if err := h.policy.CanViewProfile(caller, username); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	changed, profile, err := h.identityService.UpdateProfile(r.Context(), username, identity.UpdateInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("profile update handled",
		slog.String("username", username),
		slog.Bool("changed", changed))

	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}
