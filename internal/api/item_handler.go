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

// ItemHandler handles shopping list item API requests.
//
// Listing and creation are scoped through the caller's parent list; the
// single-item endpoints (retrieve, update, delete) match by item ID alone.
type ItemHandler struct {
	shoplistService *shoplist.Service
	validator       *validator.Validate
	logger          *slog.Logger
}

// NewItemHandler creates a new ItemHandler with the given dependencies.
func NewItemHandler(shoplistService *shoplist.Service, log *slog.Logger) *ItemHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ItemHandler{
		shoplistService: shoplistService,
		validator:       validator.New(),
		logger:          log.With(slog.String("component", "item_handler")),
	}
}

// ListAllItems handles GET /shoppinglists/items.
// Returns every item across all of the caller's lists.
func (h *ItemHandler) ListAllItems(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	items, err := h.shoplistService.ListAllItems(r.Context(), caller.AccountID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list items")
		return
	}

	if items == nil {
		items = []*domain.Item{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// ListItems handles GET /shoppinglists/{list_id}/items.
// A missing (or someone else's) parent list is a 404.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	listID, err := getPathUUID(r, "list_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items, err := h.shoplistService.ListItems(r.Context(), caller.AccountID, listID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if items == nil {
		items = []*domain.Item{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// CreateItem handles POST /shoppinglists/{list_id}/items.
// The parent list must exist and belong to the caller (404 otherwise);
// a missing name is a 400. New items always start unbought.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	caller, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	listID, err := getPathUUID(r, "list_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req ItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	item, err := h.shoplistService.CreateItem(r.Context(), caller.AccountID, listID, shoplist.ItemInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("item created",
		slog.String("item_id", item.ID.String()),
		slog.String("list_id", listID.String()))

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// GetItem handles GET /shoppinglists/items/{item_id}.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireIdentity(w, r); !ok {
		return
	}

	itemID, err := getPathUUID(r, "item_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	item, err := h.shoplistService.GetItem(r.Context(), itemID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// UpdateItem handles PUT /shoppinglists/items/{item_id}.
// Name is required; bought is set from the payload.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireIdentity(w, r); !ok {
		return
	}

	itemID, err := getPathUUID(r, "item_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req ItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	item, err := h.shoplistService.UpdateItem(r.Context(), itemID, shoplist.ItemInput{
		Name:        req.Name,
		Description: req.Description,
		Bought:      req.Bought,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// DeleteItem handles DELETE /shoppinglists/items/{item_id}.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireIdentity(w, r); !ok {
		return
	}

	itemID, err := getPathUUID(r, "item_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.shoplistService.DeleteItem(r.Context(), itemID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
