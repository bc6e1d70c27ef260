package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mgithinji/shoplist-api/internal/domain"
)

// ProfileStore defines the interface for profile data persistence.
type ProfileStore interface {
	// Create saves a new profile to the store.
	// Returns ErrInvalidEntity if the referenced account does not exist.
	Create(ctx context.Context, profile *domain.Profile) error

	// GetByAccountID retrieves the profile belonging to the given account.
	// Returns ErrProfileNotFound if no profile exists.
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Profile, error)

	// Update saves changes to an existing profile.
	// Returns ErrProfileNotFound if the profile does not exist.
	Update(ctx context.Context, profile *domain.Profile) error

	// SetCachedToken stores the most recently issued token for the account's
	// profile. An empty token clears the cache.
	// Returns ErrProfileNotFound if no profile exists for the account.
	SetCachedToken(ctx context.Context, accountID uuid.UUID, token string) error

	// WithTx returns a new ProfileStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) ProfileStore
}
