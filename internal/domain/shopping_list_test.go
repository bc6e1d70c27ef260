package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoppingList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ownerID     uuid.UUID
		listName    string
		description string
		wantErr     error
	}{
		{
			name:        "valid list",
			ownerID:     uuid.New(),
			listName:    "Weekly shop",
			description: "Saturday market run",
			wantErr:     nil,
		},
		{
			name:     "empty description is allowed",
			ownerID:  uuid.New(),
			listName: "Weekly shop",
			wantErr:  nil,
		},
		{
			name:     "empty name",
			ownerID:  uuid.New(),
			listName: "",
			wantErr:  ErrEmptyName,
		},
		{
			name:     "nil owner",
			ownerID:  uuid.Nil,
			listName: "Weekly shop",
			wantErr:  ErrValidation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list, err := NewShoppingList(tt.ownerID, tt.listName, tt.description)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, list)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, list.ID)
			assert.Equal(t, tt.ownerID, list.OwnerID)
			assert.Equal(t, tt.listName, list.Name)
			assert.Equal(t, tt.description, list.Description)
		})
	}
}

func TestNewItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		listID      uuid.UUID
		itemName    string
		description string
		wantErr     error
	}{
		{
			name:        "valid item",
			listID:      uuid.New(),
			itemName:    "Oat milk",
			description: "two cartons",
			wantErr:     nil,
		},
		{
			name:     "empty name",
			listID:   uuid.New(),
			itemName: "",
			wantErr:  ErrEmptyName,
		},
		{
			name:     "nil list",
			listID:   uuid.Nil,
			itemName: "Oat milk",
			wantErr:  ErrValidation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item, err := NewItem(tt.listID, tt.itemName, tt.description)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, item)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, item.ID)
			assert.Equal(t, tt.listID, item.ListID)
			assert.Equal(t, tt.itemName, item.Name)
			assert.False(t, item.Bought)
		})
	}
}
