// Package identity composes the two persistence records behind a user,
// the Account (credentials, names, flags) and the Profile (free text,
// token cache), into the single CompositeProfile view the API exposes.
package identity

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mgithinji/shoplist-api/internal/domain"
	"github.com/mgithinji/shoplist-api/internal/platform/logger"
	"github.com/mgithinji/shoplist-api/internal/service/auth"
	"github.com/mgithinji/shoplist-api/internal/store"
)

// TxRunner executes a function within a database transaction. Production
// wiring uses store.RunInTransaction; tests substitute a pass-through.
type TxRunner func(ctx context.Context, fn store.TxFn) error

// RegisterInput carries the fields accepted at registration.
// Username and Password are mandatory; the rest are optional.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Description string
}

// UpdateInput carries a sparse profile update: fields left empty are not
// touched, so an empty string never overwrites a stored value.
type UpdateInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Description string
}

// Service implements the composite profile operations.
type Service struct {
	accounts store.AccountStore
	profiles store.ProfileStore
	hasher   auth.PasswordHasher
	runTx    TxRunner
	logger   *slog.Logger
}

// NewService creates an identity Service running its transactional
// operations against the given database handle.
func NewService(
	db *sql.DB,
	accounts store.AccountStore,
	profiles store.ProfileStore,
	hasher auth.PasswordHasher,
	log *slog.Logger,
) *Service {
	return NewServiceWithRunner(
		func(ctx context.Context, fn store.TxFn) error {
			return store.RunInTransaction(ctx, db, fn)
		},
		accounts, profiles, hasher, log,
	)
}

// NewServiceWithRunner creates an identity Service with an explicit
// transaction runner. Used by tests that have no real database.
func NewServiceWithRunner(
	runTx TxRunner,
	accounts store.AccountStore,
	profiles store.ProfileStore,
	hasher auth.PasswordHasher,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		accounts: accounts,
		profiles: profiles,
		hasher:   hasher,
		runTx:    runTx,
		logger:   log.With(slog.String("component", "identity_service")),
	}
}

// Register creates the Account and its Profile atomically. If the profile
// insert fails the account insert is rolled back, so no orphaned Account can
// remain. Returns the composite view of the created user.
// Returns store.ErrUsernameExists if the username is taken and domain
// validation errors for missing username/password.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.CompositeProfile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if in.Username == "" {
		return nil, domain.ErrEmptyUsername
	}
	if in.Password == "" {
		return nil, domain.ErrEmptyPassword
	}

	account, err := domain.NewAccount(in.Username, in.Email, in.Password, in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	account.HashedPassword = hashed
	account.Password = ""

	profile, err := domain.NewProfile(account.ID, in.Description)
	if err != nil {
		return nil, err
	}

	err = s.runTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.accounts.WithTx(tx).Create(ctx, account); err != nil {
			return err
		}
		return s.profiles.WithTx(tx).Create(ctx, profile)
	})
	if err != nil {
		log.Warn("registration failed",
			slog.String("username", in.Username),
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("account registered",
		slog.String("account_id", account.ID.String()),
		slog.String("username", account.Username))

	composite := domain.ComposeProfile(account, profile)
	return &composite, nil
}

// ListProfiles joins every Account with its Profile, in account insertion
// order. Accounts are never created without a profile, so a missing profile
// is surfaced as an error rather than skipped.
func (s *Service) ListProfiles(ctx context.Context) ([]domain.CompositeProfile, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.CompositeProfile, 0, len(accounts))
	for _, account := range accounts {
		profile, err := s.profiles.GetByAccountID(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("profile lookup for account %s: %w", account.ID, err)
		}
		profiles = append(profiles, domain.ComposeProfile(account, profile))
	}

	return profiles, nil
}

// GetProfile returns the composite view for one username.
// Returns store.ErrAccountNotFound if no account matches.
func (s *Service) GetProfile(ctx context.Context, username string) (*domain.CompositeProfile, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByAccountID(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	composite := domain.ComposeProfile(account, profile)
	return &composite, nil
}

// UpdateProfile applies the non-empty fields of in to the user's account and
// profile. Reports whether any stored field actually changed.
// Returns store.ErrAccountNotFound if no account matches.
func (s *Service) UpdateProfile(ctx context.Context, username string, in UpdateInput) (bool, *domain.CompositeProfile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return false, nil, err
	}

	profile, err := s.profiles.GetByAccountID(ctx, account.ID)
	if err != nil {
		return false, nil, err
	}

	accountChanged := false
	if in.Email != "" && in.Email != account.Email {
		account.Email = in.Email
		accountChanged = true
	}
	if in.FirstName != "" && in.FirstName != account.FirstName {
		account.FirstName = in.FirstName
		accountChanged = true
	}
	if in.LastName != "" && in.LastName != account.LastName {
		account.LastName = in.LastName
		accountChanged = true
	}
	if in.Password != "" {
		hashed, err := s.hasher.Hash(in.Password)
		if err != nil {
			log.Error("failed to hash password", slog.String("error", err.Error()))
			return false, nil, fmt.Errorf("failed to hash password: %w", err)
		}
		account.HashedPassword = hashed
		accountChanged = true
	}

	profileChanged := false
	if in.Description != "" && in.Description != profile.Description {
		profile.Description = in.Description
		profileChanged = true
	}

	if accountChanged {
		if err := s.accounts.Update(ctx, account); err != nil {
			return false, nil, err
		}
	}
	if profileChanged {
		if err := s.profiles.Update(ctx, profile); err != nil {
			return false, nil, err
		}
	}

	changed := accountChanged || profileChanged
	if changed {
		log.Info("profile updated",
			slog.String("username", username),
			slog.Bool("account_changed", accountChanged),
			slog.Bool("profile_changed", profileChanged))
	}

	composite := domain.ComposeProfile(account, profile)
	return changed, &composite, nil
}

// ResetPassword replaces the account's password with a fresh hash of
// newPassword. Returns domain.ErrEmptyPassword for a blank password.
func (s *Service) ResetPassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return domain.ErrEmptyPassword
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account.HashedPassword = hashed

	return s.accounts.Update(ctx, account)
}

// RecordLogin stamps the account's last-login time and caches the freshly
// issued token on the profile. The cache is best-effort convenience data:
// token validation never reads it, so a failed cache write only logs.
func (s *Service) RecordLogin(ctx context.Context, accountID uuid.UUID, token string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.accounts.UpdateLastLogin(ctx, accountID); err != nil {
		return err
	}

	if err := s.profiles.SetCachedToken(ctx, accountID, token); err != nil {
		log.Warn("failed to cache issued token",
			slog.String("account_id", accountID.String()),
			slog.String("error", err.Error()))
	}

	return nil
}

// ClearCachedToken drops the cached token for the account, if any.
func (s *Service) ClearCachedToken(ctx context.Context, accountID uuid.UUID) error {
	return s.profiles.SetCachedToken(ctx, accountID, "")
}
