package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/mgithinji/shoplist-api/internal/domain"
	"github.com/mgithinji/shoplist-api/internal/store"
)

// MockProfileStore implements store.ProfileStore for testing
type MockProfileStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, profile *domain.Profile) error
	GetByAccountIDFn func(ctx context.Context, accountID uuid.UUID) (*domain.Profile, error)
	UpdateFn         func(ctx context.Context, profile *domain.Profile) error
	SetCachedTokenFn func(ctx context.Context, accountID uuid.UUID, token string) error

	// Data for default implementation, keyed by account ID
	Profiles map[uuid.UUID]*domain.Profile

	// Errors forced on the default implementation
	CreateError error
	GetError    error
}

// NewMockProfileStore creates a new mock store with initialized defaults
func NewMockProfileStore() *MockProfileStore {
	return &MockProfileStore{
		Profiles: make(map[uuid.UUID]*domain.Profile),
	}
}

// Create implements the ProfileStore interface
func (m *MockProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, profile)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Profiles[profile.AccountID]; exists {
		return store.ErrDuplicate
	}

	cp := *profile
	m.Profiles[profile.AccountID] = &cp
	return nil
}

// GetByAccountID implements the ProfileStore interface
func (m *MockProfileStore) GetByAccountID(
	ctx context.Context,
	accountID uuid.UUID,
) (*domain.Profile, error) {
	if m.GetByAccountIDFn != nil {
		return m.GetByAccountIDFn(ctx, accountID)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	profile, exists := m.Profiles[accountID]
	if !exists {
		return nil, store.ErrProfileNotFound
	}
	cp := *profile
	return &cp, nil
}

// Update implements the ProfileStore interface
func (m *MockProfileStore) Update(ctx context.Context, profile *domain.Profile) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, profile)
	}

	if _, exists := m.Profiles[profile.AccountID]; !exists {
		return store.ErrProfileNotFound
	}

	cp := *profile
	cp.UpdatedAt = time.Now().UTC()
	m.Profiles[profile.AccountID] = &cp
	return nil
}

// SetCachedToken implements the ProfileStore interface
func (m *MockProfileStore) SetCachedToken(
	ctx context.Context,
	accountID uuid.UUID,
	token string,
) error {
	if m.SetCachedTokenFn != nil {
		return m.SetCachedTokenFn(ctx, accountID, token)
	}

	profile, exists := m.Profiles[accountID]
	if !exists {
		return store.ErrProfileNotFound
	}
	profile.CachedToken = token
	return nil
}

// WithTx implements the ProfileStore interface by returning the same mock,
// so transactional code paths can run without a real database.
func (m *MockProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return m
}
