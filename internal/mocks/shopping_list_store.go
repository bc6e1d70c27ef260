package mocks

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mgithinji/shoplist-api/internal/domain"
	"github.com/mgithinji/shoplist-api/internal/store"
)

// MockShoppingListStore implements store.ShoppingListStore for testing.
// The default implementation mirrors the owner scoping of the real store:
// a list owned by someone else is reported as not found.
type MockShoppingListStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, list *domain.ShoppingList) error
	GetByIDFn     func(ctx context.Context, ownerID, listID uuid.UUID) (*domain.ShoppingList, error)
	ListByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*domain.ShoppingList, error)
	UpdateFn      func(ctx context.Context, list *domain.ShoppingList) error
	DeleteFn      func(ctx context.Context, ownerID, listID uuid.UUID) error

	// Data for default implementation, keyed by list ID
	Lists map[uuid.UUID]*domain.ShoppingList

	// ItemStore, when set, lets the default Delete cascade to the
	// list's items the way the items foreign key does in the schema.
	ItemStore *MockItemStore

	// Errors forced on the default implementation
	CreateError error
	GetError    error
}

// NewMockShoppingListStore creates a new mock store with initialized defaults
func NewMockShoppingListStore() *MockShoppingListStore {
	return &MockShoppingListStore{
		Lists: make(map[uuid.UUID]*domain.ShoppingList),
	}
}

// Create implements the ShoppingListStore interface
func (m *MockShoppingListStore) Create(ctx context.Context, list *domain.ShoppingList) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, list)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	cp := *list
	m.Lists[list.ID] = &cp
	return nil
}

// GetByID implements the ShoppingListStore interface
func (m *MockShoppingListStore) GetByID(
	ctx context.Context,
	ownerID, listID uuid.UUID,
) (*domain.ShoppingList, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, ownerID, listID)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	list, exists := m.Lists[listID]
	if !exists || list.OwnerID != ownerID {
		return nil, store.ErrListNotFound
	}
	cp := *list
	return &cp, nil
}

// ListByOwner implements the ShoppingListStore interface
func (m *MockShoppingListStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*domain.ShoppingList, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	lists := make([]*domain.ShoppingList, 0)
	for _, list := range m.Lists {
		if list.OwnerID == ownerID {
			cp := *list
			lists = append(lists, &cp)
		}
	}
	sort.Slice(lists, func(i, j int) bool {
		return lists[i].CreatedAt.Before(lists[j].CreatedAt)
	})
	return lists, nil
}

// Update implements the ShoppingListStore interface
func (m *MockShoppingListStore) Update(ctx context.Context, list *domain.ShoppingList) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, list)
	}

	existing, exists := m.Lists[list.ID]
	if !exists || existing.OwnerID != list.OwnerID {
		return store.ErrListNotFound
	}

	cp := *list
	cp.UpdatedAt = time.Now().UTC()
	m.Lists[list.ID] = &cp
	return nil
}

// Delete implements the ShoppingListStore interface
func (m *MockShoppingListStore) Delete(ctx context.Context, ownerID, listID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, listID)
	}

	existing, exists := m.Lists[listID]
	if !exists || existing.OwnerID != ownerID {
		return store.ErrListNotFound
	}

	delete(m.Lists, listID)

	if m.ItemStore != nil {
		for id, item := range m.ItemStore.Items {
			if item.ListID == listID {
				delete(m.ItemStore.Items, id)
			}
		}
	}
	return nil
}

// WithTx implements the ShoppingListStore interface by returning the same
// mock, so transactional code paths can run without a real database.
func (m *MockShoppingListStore) WithTx(tx *sql.Tx) store.ShoppingListStore {
	return m
}
