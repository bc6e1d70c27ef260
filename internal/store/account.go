package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mgithinji/shoplist-api/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account to the store. The account must already
	// carry a hashed password.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)

	// GetByUsername retrieves an account by its username.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)

	// List retrieves all accounts in insertion (joined_at) order.
	List(ctx context.Context) ([]*domain.Account, error)

	// Update modifies an existing account's details. The caller provides a
	// complete account object including HashedPassword.
	// Returns ErrAccountNotFound if the account does not exist.
	Update(ctx context.Context, account *domain.Account) error

	// UpdateLastLogin sets the account's last-login timestamp.
	// Returns ErrAccountNotFound if the account does not exist.
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new AccountStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) AccountStore
}
