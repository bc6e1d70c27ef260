package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mgithinji/shoplist-api/internal/domain"
)

// ItemStore defines the interface for shopping list item persistence.
//
// Single-item lookups are keyed by item ID alone; only listing is scoped to
// a parent list or owner. See the shoplist service for the ownership
// contract on item endpoints.
type ItemStore interface {
	// Create saves a new item.
	// Returns ErrInvalidEntity if the parent list does not exist.
	Create(ctx context.Context, item *domain.Item) error

	// GetByID retrieves an item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// ListByList retrieves all items on the given list, oldest first.
	ListByList(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error)

	// ListByOwner retrieves every item across all of the owner's lists,
	// joined through the shopping_lists table, oldest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Item, error)

	// Update saves changes to an existing item.
	// Returns ErrItemNotFound if the item does not exist.
	Update(ctx context.Context, item *domain.Item) error

	// Delete removes an item by its ID.
	// Returns ErrItemNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new ItemStore bound to the transaction.
	WithTx(tx *sql.Tx) ItemStore
}
