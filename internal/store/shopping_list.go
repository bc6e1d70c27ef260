package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mgithinji/shoplist-api/internal/domain"
)

// ShoppingListStore defines the interface for shopping list persistence.
//
// Reads and mutations are scoped to an owner where an ownerID parameter is
// present: a row belonging to a different owner behaves exactly like an
// absent row (ErrListNotFound), so existence is never leaked across owners.
type ShoppingListStore interface {
	// Create saves a new shopping list.
	// Returns ErrInvalidEntity if the owner account does not exist.
	Create(ctx context.Context, list *domain.ShoppingList) error

	// GetByID retrieves a list by ID, scoped to the owner.
	// Returns ErrListNotFound if absent or owned by someone else.
	GetByID(ctx context.Context, ownerID, listID uuid.UUID) (*domain.ShoppingList, error)

	// ListByOwner retrieves all lists belonging to the owner, oldest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.ShoppingList, error)

	// Update saves changes to an existing list, scoped to the owner.
	// Returns ErrListNotFound if absent or owned by someone else.
	Update(ctx context.Context, list *domain.ShoppingList) error

	// Delete removes a list, scoped to the owner. Items on the list are
	// removed by the database's cascade rule.
	// Returns ErrListNotFound if absent or owned by someone else.
	Delete(ctx context.Context, ownerID, listID uuid.UUID) error

	// WithTx returns a new ShoppingListStore bound to the transaction.
	WithTx(tx *sql.Tx) ShoppingListStore
}
