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

// ItemStore implements the store.ItemStore interface using a PostgreSQL
// database as the storage backend.
type ItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewItemStore creates a new PostgreSQL implementation of the ItemStore
// interface.
// If logger is nil, a default logger will be used.
func NewItemStore(db store.DBTX, logger *slog.Logger) *ItemStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_store")),
	}
}

// Ensure ItemStore implements store.ItemStore interface
var _ store.ItemStore = (*ItemStore)(nil)

// Create implements store.ItemStore.Create
// Returns store.ErrInvalidEntity if the parent list does not exist.
func (s *ItemStore) Create(ctx context.Context, item *domain.Item) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("item validation failed during create",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID.String()))
		return err
	}

	query := `
		INSERT INTO items (id, list_id, name, description, bought, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		item.ID,
		item.ListID,
		item.Name,
		item.Description,
		item.Bought,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during item creation",
				slog.String("list_id", item.ListID.String()))
			return fmt.Errorf("%w: shopping list with ID %s not found",
				store.ErrInvalidEntity, item.ListID)
		}

		log.Error("failed to create item",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID.String()))
		return err
	}

	log.Debug("item created",
		slog.String("item_id", item.ID.String()),
		slog.String("list_id", item.ListID.String()))
	return nil
}

// GetByID implements store.ItemStore.GetByID
// Returns store.ErrItemNotFound if the item does not exist.
func (s *ItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, list_id, name, description, bought, created_at, updated_at
		FROM items
		WHERE id = $1
	`

	var item domain.Item
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.ListID,
		&item.Name,
		&item.Description,
		&item.Bought,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to get item",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()))
		return nil, err
	}

	return &item, nil
}

// ListByList implements store.ItemStore.ListByList
func (s *ItemStore) ListByList(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error) {
	query := `
		SELECT id, list_id, name, description, bought, created_at, updated_at
		FROM items
		WHERE list_id = $1
		ORDER BY created_at, id
	`
	return s.queryItems(ctx, query, listID)
}

// ListByOwner implements store.ItemStore.ListByOwner
// Joins through shopping_lists to collect every item the owner has across
// all their lists.
func (s *ItemStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Item, error) {
	query := `
		SELECT items.id, items.list_id, items.name, items.description,
			items.bought, items.created_at, items.updated_at
		FROM items
		JOIN shopping_lists ON shopping_lists.id = items.list_id
		WHERE shopping_lists.owner_id = $1
		ORDER BY items.created_at, items.id
	`
	return s.queryItems(ctx, query, ownerID)
}

// Update implements store.ItemStore.Update
// Returns store.ErrItemNotFound if the item does not exist.
func (s *ItemStore) Update(ctx context.Context, item *domain.Item) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE items
		SET name = $2, description = $3, bought = $4, updated_at = now()
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, item.ID, item.Name, item.Description, item.Bought)
	if err != nil {
		log.Error("failed to update item",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrItemNotFound
	}

	log.Debug("item updated", slog.String("item_id", item.ID.String()))
	return nil
}

// Delete implements store.ItemStore.Delete
// Returns store.ErrItemNotFound if the item does not exist.
func (s *ItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete item",
			slog.String("error", err.Error()),
			slog.String("item_id", id.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrItemNotFound
	}

	log.Debug("item deleted", slog.String("item_id", id.String()))
	return nil
}

// WithTx implements store.ItemStore.WithTx
func (s *ItemStore) WithTx(tx *sql.Tx) store.ItemStore {
	return &ItemStore{db: tx, logger: s.logger}
}

func (s *ItemStore) queryItems(ctx context.Context, query string, arg any) ([]*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		log.Error("failed to query items", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []*domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID,
			&item.ListID,
			&item.Name,
			&item.Description,
			&item.Bought,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			log.Error("failed to scan item row", slog.String("error", err.Error()))
			return nil, err
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}
