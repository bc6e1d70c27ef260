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

// ProfileStore implements the store.ProfileStore interface using a
// PostgreSQL database as the storage backend.
type ProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProfileStore creates a new PostgreSQL implementation of the
// ProfileStore interface.
// If logger is nil, a default logger will be used.
func NewProfileStore(db store.DBTX, logger *slog.Logger) *ProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ProfileStore{
		db:     db,
		logger: logger.With(slog.String("component", "profile_store")),
	}
}

// Ensure ProfileStore implements store.ProfileStore interface
var _ store.ProfileStore = (*ProfileStore)(nil)

// Create implements store.ProfileStore.Create
// Returns store.ErrInvalidEntity if the referenced account does not exist.
func (s *ProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		log.Warn("profile validation failed during create",
			slog.String("error", err.Error()),
			slog.String("profile_id", profile.ID.String()))
		return err
	}

	query := `
		INSERT INTO profiles (id, account_id, description, cached_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		profile.ID,
		profile.AccountID,
		profile.Description,
		profile.CachedToken,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during profile creation",
				slog.String("account_id", profile.AccountID.String()))
			return fmt.Errorf("%w: account with ID %s not found",
				store.ErrInvalidEntity, profile.AccountID)
		}
		if isUniqueViolation(err) {
			// One profile per account, enforced by the unique account_id index.
			log.Warn("duplicate profile for account",
				slog.String("account_id", profile.AccountID.String()))
			return fmt.Errorf("%w: profile for account %s",
				store.ErrDuplicate, profile.AccountID)
		}

		log.Error("failed to create profile",
			slog.String("error", err.Error()),
			slog.String("profile_id", profile.ID.String()))
		return err
	}

	log.Info("profile created successfully",
		slog.String("profile_id", profile.ID.String()),
		slog.String("account_id", profile.AccountID.String()))
	return nil
}

// GetByAccountID implements store.ProfileStore.GetByAccountID
// Returns store.ErrProfileNotFound if no profile exists for the account.
func (s *ProfileStore) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, account_id, description, cached_token, created_at, updated_at
		FROM profiles
		WHERE account_id = $1
	`

	var profile domain.Profile
	var cachedToken sql.NullString
	err := s.db.QueryRowContext(ctx, query, accountID).Scan(
		&profile.ID,
		&profile.AccountID,
		&profile.Description,
		&cachedToken,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to get profile",
			slog.String("error", err.Error()),
			slog.String("account_id", accountID.String()))
		return nil, err
	}

	profile.CachedToken = cachedToken.String
	return &profile, nil
}

// Update implements store.ProfileStore.Update
// Returns store.ErrProfileNotFound if the profile does not exist.
func (s *ProfileStore) Update(ctx context.Context, profile *domain.Profile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE profiles
		SET description = $2, updated_at = now()
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, profile.ID, profile.Description)
	if err != nil {
		log.Error("failed to update profile",
			slog.String("error", err.Error()),
			slog.String("profile_id", profile.ID.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrProfileNotFound
	}

	log.Debug("profile updated", slog.String("profile_id", profile.ID.String()))
	return nil
}

// SetCachedToken implements store.ProfileStore.SetCachedToken
// An empty token clears the cache (stored as NULL).
func (s *ProfileStore) SetCachedToken(ctx context.Context, accountID uuid.UUID, token string) error {
	var value sql.NullString
	if token != "" {
		value = sql.NullString{String: token, Valid: true}
	}

	result, err := s.db.ExecContext(
		ctx,
		`UPDATE profiles SET cached_token = $2, updated_at = now() WHERE account_id = $1`,
		accountID,
		value,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrProfileNotFound
	}
	return nil
}

// WithTx implements store.ProfileStore.WithTx
func (s *ProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return &ProfileStore{db: tx, logger: s.logger}
}
