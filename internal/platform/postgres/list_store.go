package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mgithinji/shoplist-api/internal/domain"
	"github.com/mgithinji/shoplist-api/internal/platform/logger"
	"github.com/mgithinji/shoplist-api/internal/store"
)

// ShoppingListStore implements the store.ShoppingListStore interface using
// a PostgreSQL database as the storage backend. All single-row operations
// carry an owner_id predicate, so rows belonging to other owners are
// indistinguishable from absent rows.
type ShoppingListStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewShoppingListStore creates a new PostgreSQL implementation of the
// ShoppingListStore interface.
// If logger is nil, a default logger will be used.
func NewShoppingListStore(db store.DBTX, logger *slog.Logger) *ShoppingListStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ShoppingListStore{
		db:     db,
		logger: logger.With(slog.String("component", "shopping_list_store")),
	}
}

// Ensure ShoppingListStore implements store.ShoppingListStore interface
var _ store.ShoppingListStore = (*ShoppingListStore)(nil)

// Create implements store.ShoppingListStore.Create
// Returns store.ErrInvalidEntity if the owner account does not exist.
func (s *ShoppingListStore) Create(ctx context.Context, list *domain.ShoppingList) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := list.Validate(); err != nil {
		log.Warn("shopping list validation failed during create",
			slog.String("error", err.Error()),
			slog.String("list_id", list.ID.String()))
		return err
	}

	query := `
		INSERT INTO shopping_lists (id, owner_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		list.ID,
		list.OwnerID,
		list.Name,
		list.Description,
		list.CreatedAt,
		list.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during list creation",
				slog.String("owner_id", list.OwnerID.String()))
			return fmt.Errorf("%w: account with ID %s not found",
				store.ErrInvalidEntity, list.OwnerID)
		}

		log.Error("failed to create shopping list",
			slog.String("error", err.Error()),
			slog.String("list_id", list.ID.String()))
		return err
	}

	log.Debug("shopping list created",
		slog.String("list_id", list.ID.String()),
		slog.String("owner_id", list.OwnerID.String()))
	return nil
}

// GetByID implements store.ShoppingListStore.GetByID
// Returns store.ErrListNotFound if absent or owned by someone else.
func (s *ShoppingListStore) GetByID(ctx context.Context, ownerID, listID uuid.UUID) (*domain.ShoppingList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM shopping_lists
		WHERE id = $1 AND owner_id = $2
	`

	var list domain.ShoppingList
	err := s.db.QueryRowContext(ctx, query, listID, ownerID).Scan(
		&list.ID,
		&list.OwnerID,
		&list.Name,
		&list.Description,
		&list.CreatedAt,
		&list.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrListNotFound
		}
		log.Error("failed to get shopping list",
			slog.String("error", err.Error()),
			slog.String("list_id", listID.String()))
		return nil, err
	}

	return &list, nil
}

// ListByOwner implements store.ShoppingListStore.ListByOwner
func (s *ShoppingListStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.ShoppingList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM shopping_lists
		WHERE owner_id = $1
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to list shopping lists",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var lists []*domain.ShoppingList
	for rows.Next() {
		var list domain.ShoppingList
		if err := rows.Scan(
			&list.ID,
			&list.OwnerID,
			&list.Name,
			&list.Description,
			&list.CreatedAt,
			&list.UpdatedAt,
		); err != nil {
			log.Error("failed to scan shopping list row", slog.String("error", err.Error()))
			return nil, err
		}
		lists = append(lists, &list)
	}

	return lists, rows.Err()
}

// Update implements store.ShoppingListStore.Update
// Returns store.ErrListNotFound if absent or owned by someone else.
func (s *ShoppingListStore) Update(ctx context.Context, list *domain.ShoppingList) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := list.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE shopping_lists
		SET name = $3, description = $4, updated_at = now()
		WHERE id = $1 AND owner_id = $2
	`
	result, err := s.db.ExecContext(ctx, query, list.ID, list.OwnerID, list.Name, list.Description)
	if err != nil {
		log.Error("failed to update shopping list",
			slog.String("error", err.Error()),
			slog.String("list_id", list.ID.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrListNotFound
	}

	log.Debug("shopping list updated", slog.String("list_id", list.ID.String()))
	return nil
}

// Delete implements store.ShoppingListStore.Delete
//
// Items on the list are removed by the ON DELETE CASCADE constraint on
// items.list_id; application code does not delete them explicitly.
// Returns store.ErrListNotFound if absent or owned by someone else.
func (s *ShoppingListStore) Delete(ctx context.Context, ownerID, listID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`DELETE FROM shopping_lists WHERE id = $1 AND owner_id = $2`,
		listID,
		ownerID,
	)
	if err != nil {
		log.Error("failed to delete shopping list",
			slog.String("error", err.Error()),
			slog.String("list_id", listID.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrListNotFound
	}

	log.Debug("shopping list deleted", slog.String("list_id", listID.String()))
	return nil
}

// WithTx implements store.ShoppingListStore.WithTx
func (s *ShoppingListStore) WithTx(tx *sql.Tx) store.ShoppingListStore {
	return &ShoppingListStore{db: tx, logger: s.logger}
}
