package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mgithinji/shoplist-api/internal/api/shared"
	"github.com/mgithinji/shoplist-api/internal/domain"
	"github.com/mgithinji/shoplist-api/internal/platform/logger"
	"github.com/mgithinji/shoplist-api/internal/service/shoplist"
)

// ListHandler handles shopping list API requests. Every operation is scoped
// to the authenticated caller's own lists; someone else's list is reported
// as not found.
type ListHandler struct {
	shoplistService *shoplist.Service
	validator       *validator.Validate
	logger          *slog.Logger
}

// NewListHandler creates a new ListHandler with the given dependencies.
func NewListHandler(shoplistService *shoplist.Service, log *slog.Logger) *ListHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ListHandler{
		shoplistService: shoplistService,
		validator:       validator.New(),
		logger:          log.With(slog.String("component", "list_handler")),
	}
}

// ListLists handles GET /shoppinglists.
func (h *ListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	lists, err := h.shoplistService.ListLists(r.Context(), caller.AccountID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list shopping lists")
		return
	}

	if lists == nil {
		lists = []*domain.ShoppingList{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, lists)
}

// CreateList handles POST /shoppinglists.
// A missing name is a 400.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req ShoppingListRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	list, err := h.shoplistService.CreateList(r.Context(), caller.AccountID, shoplist.ListInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("shopping list created",
		slog.String("list_id", list.ID.String()),
		slog.String("owner", caller.Username))

	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// GetList handles GET /shoppinglists/{list_id}.
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	listID, err := getPathUUID(r, "list_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	list, err := h.shoplistService.GetList(r.Context(), caller.AccountID, listID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// UpdateList handles PUT /shoppinglists/{list_id}.
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	listID, err := getPathUUID(r, "list_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req ShoppingListRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	list, err := h.shoplistService.UpdateList(r.Context(), caller.AccountID, listID, shoplist.ListInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, list)
}

// DeleteList handles DELETE /shoppinglists/{list_id}.
// Items on the list are deleted with it.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	listID, err := getPathUUID(r, "list_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.shoplistService.DeleteList(r.Context(), caller.AccountID, listID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
