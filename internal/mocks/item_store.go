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

// MockItemStore implements store.ItemStore for testing.
// ListByOwner needs to see which lists belong to the owner, so the mock
// optionally holds a reference to a MockShoppingListStore for the join.
type MockItemStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, item *domain.Item) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	ListByListFn  func(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error)
	ListByOwnerFn func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Item, error)
	UpdateFn      func(ctx context.Context, item *domain.Item) error
	DeleteFn      func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation, keyed by item ID
	Items map[uuid.UUID]*domain.Item

	// ListStore resolves list ownership for the default ListByOwner
	// implementation. Leave nil if the test overrides ListByOwnerFn.
	ListStore *MockShoppingListStore

	// Errors forced on the default implementation
	CreateError error
	GetError    error
}

// NewMockItemStore creates a new mock store with initialized defaults
func NewMockItemStore() *MockItemStore {
	return &MockItemStore{
		Items: make(map[uuid.UUID]*domain.Item),
	}
}

// Create implements the ItemStore interface
func (m *MockItemStore) Create(ctx context.Context, item *domain.Item) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, item)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if m.ListStore != nil {
		if _, exists := m.ListStore.Lists[item.ListID]; !exists {
			return store.ErrInvalidEntity
		}
	}

	cp := *item
	m.Items[item.ID] = &cp
	return nil
}

// GetByID implements the ItemStore interface
func (m *MockItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	item, exists := m.Items[id]
	if !exists {
		return nil, store.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

// ListByList implements the ItemStore interface
func (m *MockItemStore) ListByList(
	ctx context.Context,
	listID uuid.UUID,
) ([]*domain.Item, error) {
	if m.ListByListFn != nil {
		return m.ListByListFn(ctx, listID)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	items := make([]*domain.Item, 0)
	for _, item := range m.Items {
		if item.ListID == listID {
			cp := *item
			items = append(items, &cp)
		}
	}
	sortItems(items)
	return items, nil
}

// ListByOwner implements the ItemStore interface
func (m *MockItemStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*domain.Item, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	items := make([]*domain.Item, 0)
	for _, item := range m.Items {
		if m.ListStore == nil {
			continue
		}
		list, exists := m.ListStore.Lists[item.ListID]
		if exists && list.OwnerID == ownerID {
			cp := *item
			items = append(items, &cp)
		}
	}
	sortItems(items)
	return items, nil
}

// Update implements the ItemStore interface
func (m *MockItemStore) Update(ctx context.Context, item *domain.Item) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, item)
	}

	if _, exists := m.Items[item.ID]; !exists {
		return store.ErrItemNotFound
	}

	cp := *item
	cp.UpdatedAt = time.Now().UTC()
	m.Items[item.ID] = &cp
	return nil
}

// Delete implements the ItemStore interface
func (m *MockItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Items[id]; !exists {
		return store.ErrItemNotFound
	}

	delete(m.Items, id)
	return nil
}

// WithTx implements the ItemStore interface by returning the same mock,
// so transactional code paths can run without a real database.
func (m *MockItemStore) WithTx(tx *sql.Tx) store.ItemStore {
	return m
}

func sortItems(items []*domain.Item) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}
