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

// AccountStore implements the store.AccountStore interface using a
// PostgreSQL database as the storage backend.
type AccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewAccountStore(db store.DBTX, logger *slog.Logger) *AccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure AccountStore implements store.AccountStore interface
var _ store.AccountStore = (*AccountStore)(nil)

const accountColumns = `id, username, email, hashed_password, first_name, last_name,
		superuser, last_login_at, joined_at, updated_at`

// Create implements store.AccountStore.Create
// Returns store.ErrUsernameExists on a duplicate username.
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	query := `
		INSERT INTO accounts (id, username, email, hashed_password, first_name,
			last_name, superuser, last_login_at, joined_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.Username,
		account.Email,
		account.HashedPassword,
		account.FirstName,
		account.LastName,
		account.Superuser,
		account.LastLoginAt,
		account.JoinedAt,
		account.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate username during account creation",
				slog.String("username", account.Username))
			return store.ErrUsernameExists
		}

		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	log.Info("account created successfully",
		slog.String("account_id", account.ID.String()),
		slog.String("username", account.Username))
	return nil
}

// GetByID implements store.AccountStore.GetByID
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *AccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE id = $1`, accountColumns)
	return s.scanAccount(ctx, s.db.QueryRowContext(ctx, query, id))
}

// GetByUsername implements store.AccountStore.GetByUsername
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *AccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE username = $1`, accountColumns)
	return s.scanAccount(ctx, s.db.QueryRowContext(ctx, query, username))
}

// List implements store.AccountStore.List
// Accounts come back in insertion order (joined_at, id as tiebreak).
func (s *AccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`SELECT %s FROM accounts ORDER BY joined_at, id`, accountColumns)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list accounts", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var accounts []*domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.Username,
			&account.Email,
			&account.HashedPassword,
			&account.FirstName,
			&account.LastName,
			&account.Superuser,
			&account.LastLoginAt,
			&account.JoinedAt,
			&account.UpdatedAt,
		); err != nil {
			log.Error("failed to scan account row", slog.String("error", err.Error()))
			return nil, err
		}
		accounts = append(accounts, &account)
	}

	return accounts, rows.Err()
}

// Update implements store.AccountStore.Update
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *AccountStore) Update(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE accounts
		SET email = $2, hashed_password = $3, first_name = $4, last_name = $5,
			superuser = $6, updated_at = now()
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.Email,
		account.HashedPassword,
		account.FirstName,
		account.LastName,
		account.Superuser,
	)
	if err != nil {
		log.Error("failed to update account",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrAccountNotFound
	}

	log.Debug("account updated", slog.String("account_id", account.ID.String()))
	return nil
}

// UpdateLastLogin implements store.AccountStore.UpdateLastLogin
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *AccountStore) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE accounts SET last_login_at = now(), updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrAccountNotFound
	}
	return nil
}

// WithTx implements store.AccountStore.WithTx
func (s *AccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &AccountStore{db: tx, logger: s.logger}
}

// scanAccount scans a single account row, mapping sql.ErrNoRows to
// store.ErrAccountNotFound.
func (s *AccountStore) scanAccount(ctx context.Context, row *sql.Row) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var account domain.Account
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.HashedPassword,
		&account.FirstName,
		&account.LastName,
		&account.Superuser,
		&account.LastLoginAt,
		&account.JoinedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to scan account", slog.String("error", err.Error()))
		return nil, err
	}

	return &account, nil
}
