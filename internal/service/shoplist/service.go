// Package shoplist implements the shopping list and item resource services.
//
// Ownership contract: list operations are always scoped to the calling
// owner. A list that exists but belongs to someone else is reported as not
// found, never as forbidden. Item listing and creation are scoped through
// the parent list; single-item retrieve/update/delete match by item ID
// alone.
package shoplist

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mgithinji/shoplist-api/internal/domain"
	"github.com/mgithinji/shoplist-api/internal/platform/logger"
	"github.com/mgithinji/shoplist-api/internal/store"
)

// ListInput carries the mutable fields of a shopping list.
type ListInput struct {
	Name        string
	Description string
}

// ItemInput carries the mutable fields of an item.
type ItemInput struct {
	Name        string
	Description string
	Bought      bool
}

// Service implements CRUD behavior for shopping lists and their items.
type Service struct {
	lists  store.ShoppingListStore
	items  store.ItemStore
	logger *slog.Logger
}

// NewService creates a shoplist Service.
func NewService(lists store.ShoppingListStore, items store.ItemStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		lists:  lists,
		items:  items,
		logger: log.With(slog.String("component", "shoplist_service")),
	}
}

// CreateList creates a new shopping list owned by ownerID.
// Returns domain.ErrEmptyName if the name is missing.
func (s *Service) CreateList(ctx context.Context, ownerID uuid.UUID, in ListInput) (*domain.ShoppingList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	list, err := domain.NewShoppingList(ownerID, in.Name, in.Description)
	if err != nil {
		return nil, err
	}

	if err := s.lists.Create(ctx, list); err != nil {
		return nil, err
	}

	log.Info("shopping list created",
		slog.String("list_id", list.ID.String()),
		slog.String("owner_id", ownerID.String()))
	return list, nil
}

// ListLists returns all lists owned by ownerID, oldest first.
func (s *Service) ListLists(ctx context.Context, ownerID uuid.UUID) ([]*domain.ShoppingList, error) {
	return s.lists.ListByOwner(ctx, ownerID)
}

// GetList retrieves one of the owner's lists.
// Returns store.ErrListNotFound if absent or owned by someone else.
func (s *Service) GetList(ctx context.Context, ownerID, listID uuid.UUID) (*domain.ShoppingList, error) {
	return s.lists.GetByID(ctx, ownerID, listID)
}

// UpdateList applies in to an existing list. The existence check precedes
// the mutation; updating an absent list is an error, not a create.
// Returns domain.ErrEmptyName for a blank name and store.ErrListNotFound
// if the list is absent or owned by someone else.
func (s *Service) UpdateList(ctx context.Context, ownerID, listID uuid.UUID, in ListInput) (*domain.ShoppingList, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	list, err := s.lists.GetByID(ctx, ownerID, listID)
	if err != nil {
		return nil, err
	}

	list.Name = in.Name
	list.Description = in.Description

	if err := s.lists.Update(ctx, list); err != nil {
		return nil, err
	}

	return list, nil
}

// DeleteList removes one of the owner's lists. Items on the list are
// removed with it (database cascade).
// Returns store.ErrListNotFound if absent or owned by someone else.
func (s *Service) DeleteList(ctx context.Context, ownerID, listID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.lists.Delete(ctx, ownerID, listID); err != nil {
		return err
	}

	log.Info("shopping list deleted",
		slog.String("list_id", listID.String()),
		slog.String("owner_id", ownerID.String()))
	return nil
}

// ListItems returns all items on one of the owner's lists.
// Returns store.ErrListNotFound if the parent list is absent or owned by
// someone else.
func (s *Service) ListItems(ctx context.Context, ownerID, listID uuid.UUID) ([]*domain.Item, error) {
	if _, err := s.lists.GetByID(ctx, ownerID, listID); err != nil {
		return nil, err
	}
	return s.items.ListByList(ctx, listID)
}

// ListAllItems returns every item across all of the owner's lists.
func (s *Service) ListAllItems(ctx context.Context, ownerID uuid.UUID) ([]*domain.Item, error) {
	return s.items.ListByOwner(ctx, ownerID)
}

// CreateItem adds an item to one of the owner's lists. The parent list
// existence check precedes creation.
// Returns store.ErrListNotFound if the list is absent or owned by someone
// else, and domain.ErrEmptyName for a blank item name.
func (s *Service) CreateItem(ctx context.Context, ownerID, listID uuid.UUID, in ItemInput) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.lists.GetByID(ctx, ownerID, listID); err != nil {
		return nil, err
	}

	item, err := domain.NewItem(listID, in.Name, in.Description)
	if err != nil {
		return nil, err
	}

	if err := s.items.Create(ctx, item); err != nil {
		// The list existed a moment ago; a foreign key violation here means
		// it was deleted concurrently.
		if errors.Is(err, store.ErrInvalidEntity) {
			return nil, store.ErrListNotFound
		}
		return nil, err
	}

	log.Info("item created",
		slog.String("item_id", item.ID.String()),
		slog.String("list_id", listID.String()))
	return item, nil
}

// GetItem retrieves an item by its ID alone (not list-scoped).
// Returns store.ErrItemNotFound if absent.
func (s *Service) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	return s.items.GetByID(ctx, itemID)
}

// UpdateItem applies in to an existing item, matched by item ID alone.
// Name is required; Bought is set from the input (defaults apply at the
// HTTP boundary). Returns store.ErrItemNotFound if absent.
func (s *Service) UpdateItem(ctx context.Context, itemID uuid.UUID, in ItemInput) (*domain.Item, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Bought = in.Bought

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem removes an item, matched by item ID alone.
// Returns store.ErrItemNotFound if absent.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return s.items.Delete(ctx, itemID)
}
