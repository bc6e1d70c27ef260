package shoplist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgithinji/shoplist-api/internal/domain"
	"github.com/mgithinji/shoplist-api/internal/mocks"
	"github.com/mgithinji/shoplist-api/internal/store"
)

type testFixture struct {
	lists *mocks.MockShoppingListStore
	items *mocks.MockItemStore
	svc   *Service
}

func newFixture() *testFixture {
	lists := mocks.NewMockShoppingListStore()
	items := mocks.NewMockItemStore()
	items.ListStore = lists
	lists.ItemStore = items
	return &testFixture{
		lists: lists,
		items: items,
		svc:   NewService(lists, items, nil),
	}
}

func (f *testFixture) seedList(t *testing.T, ownerID uuid.UUID, name string) *domain.ShoppingList {
	t.Helper()

	list, err := f.svc.CreateList(context.Background(), ownerID, ListInput{Name: name})
	require.NoError(t, err)
	return list
}

func (f *testFixture) seedItem(t *testing.T, ownerID, listID uuid.UUID, name string) *domain.Item {
	t.Helper()

	item, err := f.svc.CreateItem(context.Background(), ownerID, listID, ItemInput{Name: name})
	require.NoError(t, err)
	return item
}

func TestCreateList(t *testing.T) {
	t.Parallel()

	t.Run("creates a list for the owner", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		ownerID := uuid.New()

		list, err := f.svc.CreateList(context.Background(), ownerID, ListInput{
			Name:        "Weekly shop",
			Description: "Saturday market run",
		})
		require.NoError(t, err)
		assert.Equal(t, ownerID, list.OwnerID)
		assert.Equal(t, "Weekly shop", list.Name)
		assert.Contains(t, f.lists.Lists, list.ID)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		_, err := f.svc.CreateList(context.Background(), uuid.New(), ListInput{})
		assert.ErrorIs(t, err, domain.ErrEmptyName)
	})
}

func TestGetList(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ownerID := uuid.New()
	otherOwner := uuid.New()
	list := f.seedList(t, ownerID, "Weekly shop")

	t.Run("owner sees their list", func(t *testing.T) {
		t.Parallel()

		got, err := f.svc.GetList(context.Background(), ownerID, list.ID)
		require.NoError(t, err)
		assert.Equal(t, list.ID, got.ID)
	})

	t.Run("someone else's list is not found", func(t *testing.T) {
		t.Parallel()

		_, err := f.svc.GetList(context.Background(), otherOwner, list.ID)
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})

	t.Run("absent list is not found", func(t *testing.T) {
		t.Parallel()

		_, err := f.svc.GetList(context.Background(), ownerID, uuid.New())
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})
}

func TestListLists(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ownerID := uuid.New()
	otherOwner := uuid.New()

	f.seedList(t, ownerID, "Groceries")
	f.seedList(t, ownerID, "Hardware")
	f.seedList(t, otherOwner, "Not yours")

	lists, err := f.svc.ListLists(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	for _, l := range lists {
		assert.Equal(t, ownerID, l.OwnerID)
	}
}

func TestUpdateList(t *testing.T) {
	t.Parallel()

	t.Run("updates name and description", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		ownerID := uuid.New()
		list := f.seedList(t, ownerID, "Weekly shop")

		updated, err := f.svc.UpdateList(context.Background(), ownerID, list.ID, ListInput{
			Name:        "Monthly shop",
			Description: "bulk run",
		})
		require.NoError(t, err)
		assert.Equal(t, "Monthly shop", updated.Name)
		assert.Equal(t, "bulk run", updated.Description)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		ownerID := uuid.New()
		list := f.seedList(t, ownerID, "Weekly shop")

		_, err := f.svc.UpdateList(context.Background(), ownerID, list.ID, ListInput{})
		assert.ErrorIs(t, err, domain.ErrEmptyName)
	})

	t.Run("someone else's list is not found", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		list := f.seedList(t, uuid.New(), "Weekly shop")

		_, err := f.svc.UpdateList(context.Background(), uuid.New(), list.ID, ListInput{Name: "X"})
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})
}

func TestDeleteList(t *testing.T) {
	t.Parallel()

	t.Run("owner can delete", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		ownerID := uuid.New()
		list := f.seedList(t, ownerID, "Weekly shop")

		require.NoError(t, f.svc.DeleteList(context.Background(), ownerID, list.ID))
		assert.NotContains(t, f.lists.Lists, list.ID)
	})

	t.Run("someone else's list is not found", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		list := f.seedList(t, uuid.New(), "Weekly shop")

		err := f.svc.DeleteList(context.Background(), uuid.New(), list.ID)
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})

	t.Run("deleting a list removes its items", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		ownerID := uuid.New()
		doomed := f.seedList(t, ownerID, "Weekly shop")
		kept := f.seedList(t, ownerID, "Hardware run")
		doomedItem := f.seedItem(t, ownerID, doomed.ID, "Oat milk")
		keptItem := f.seedItem(t, ownerID, kept.ID, "Wood screws")

		require.NoError(t, f.svc.DeleteList(context.Background(), ownerID, doomed.ID))

		_, err := f.svc.GetItem(context.Background(), doomedItem.ID)
		assert.ErrorIs(t, err, store.ErrItemNotFound)

		remaining, err := f.svc.ListAllItems(context.Background(), ownerID)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, keptItem.ID, remaining[0].ID)
	})
}

func TestCreateItem(t *testing.T) {
	t.Parallel()

	t.Run("creates an item on the owner's list", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		ownerID := uuid.New()
		list := f.seedList(t, ownerID, "Weekly shop")

		item, err := f.svc.CreateItem(context.Background(), ownerID, list.ID, ItemInput{
			Name:        "Oat milk",
			Description: "two cartons",
		})
		require.NoError(t, err)
		assert.Equal(t, list.ID, item.ListID)
		assert.False(t, item.Bought)
	})

	t.Run("missing parent list", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		_, err := f.svc.CreateItem(context.Background(), uuid.New(), uuid.New(), ItemInput{Name: "Oat milk"})
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})

	t.Run("someone else's parent list", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		list := f.seedList(t, uuid.New(), "Weekly shop")

		_, err := f.svc.CreateItem(context.Background(), uuid.New(), list.ID, ItemInput{Name: "Oat milk"})
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		ownerID := uuid.New()
		list := f.seedList(t, ownerID, "Weekly shop")

		_, err := f.svc.CreateItem(context.Background(), ownerID, list.ID, ItemInput{})
		assert.ErrorIs(t, err, domain.ErrEmptyName)
	})

	t.Run("list deleted between check and insert", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		ownerID := uuid.New()
		list := f.seedList(t, ownerID, "Weekly shop")

		f.items.CreateFn = func(ctx context.Context, item *domain.Item) error {
			return store.ErrInvalidEntity
		}

		_, err := f.svc.CreateItem(context.Background(), ownerID, list.ID, ItemInput{Name: "Oat milk"})
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})
}

func TestListItems(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ownerID := uuid.New()
	list := f.seedList(t, ownerID, "Weekly shop")
	other := f.seedList(t, ownerID, "Hardware")

	f.seedItem(t, ownerID, list.ID, "Oat milk")
	f.seedItem(t, ownerID, list.ID, "Bread")
	f.seedItem(t, ownerID, other.ID, "Screws")

	t.Run("returns only the list's items", func(t *testing.T) {
		t.Parallel()

		items, err := f.svc.ListItems(context.Background(), ownerID, list.ID)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("someone else's list is not found", func(t *testing.T) {
		t.Parallel()

		_, err := f.svc.ListItems(context.Background(), uuid.New(), list.ID)
		assert.ErrorIs(t, err, store.ErrListNotFound)
	})
}

func TestListAllItems(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ownerID := uuid.New()
	otherOwner := uuid.New()

	groceries := f.seedList(t, ownerID, "Groceries")
	hardware := f.seedList(t, ownerID, "Hardware")
	foreign := f.seedList(t, otherOwner, "Not yours")

	f.seedItem(t, ownerID, groceries.ID, "Oat milk")
	f.seedItem(t, ownerID, hardware.ID, "Screws")
	f.seedItem(t, otherOwner, foreign.ID, "Secret thing")

	items, err := f.svc.ListAllItems(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.NotEqual(t, foreign.ID, item.ListID)
	}
}

func TestUpdateItem(t *testing.T) {
	t.Parallel()

	t.Run("updates fields including bought", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		ownerID := uuid.New()
		list := f.seedList(t, ownerID, "Weekly shop")
		item := f.seedItem(t, ownerID, list.ID, "Oat milk")

		updated, err := f.svc.UpdateItem(context.Background(), item.ID, ItemInput{
			Name:   "Oat milk",
			Bought: true,
		})
		require.NoError(t, err)
		assert.True(t, updated.Bought)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		ownerID := uuid.New()
		list := f.seedList(t, ownerID, "Weekly shop")
		item := f.seedItem(t, ownerID, list.ID, "Oat milk")

		_, err := f.svc.UpdateItem(context.Background(), item.ID, ItemInput{})
		assert.ErrorIs(t, err, domain.ErrEmptyName)
	})

	t.Run("absent item", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		_, err := f.svc.UpdateItem(context.Background(), uuid.New(), ItemInput{Name: "X"})
		assert.ErrorIs(t, err, store.ErrItemNotFound)
	})
}

func TestDeleteItem(t *testing.T) {
	t.Parallel()

	t.Run("deletes an existing item", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		ownerID := uuid.New()
		list := f.seedList(t, ownerID, "Weekly shop")
		item := f.seedItem(t, ownerID, list.ID, "Oat milk")

		require.NoError(t, f.svc.DeleteItem(context.Background(), item.ID))
		assert.NotContains(t, f.items.Items, item.ID)
	})

	t.Run("absent item", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		err := f.svc.DeleteItem(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrItemNotFound)
	})
}
