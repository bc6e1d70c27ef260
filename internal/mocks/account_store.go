package mocks

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mgithinji/shoplist-api/internal/domain"
	"github.com/mgithinji/shoplist-api/internal/store"
)

// MockAccountStore implements store.AccountStore for testing
type MockAccountStore struct {
	// Function fields for customizable behavior
	CreateFn          func(ctx context.Context, account *domain.Account) error
	GetByIDFn         func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByUsernameFn   func(ctx context.Context, username string) (*domain.Account, error)
	ListFn            func(ctx context.Context) ([]*domain.Account, error)
	UpdateFn          func(ctx context.Context, account *domain.Account) error
	UpdateLastLoginFn func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation, keyed by username
	Accounts map[string]*domain.Account

	// Errors forced on the default implementation
	CreateError error
	GetError    error
}

// NewMockAccountStore creates a new mock store with initialized defaults
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		Accounts: make(map[string]*domain.Account),
	}
}

// Create implements the AccountStore interface
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if _, exists := m.Accounts[account.Username]; exists {
		return store.ErrUsernameExists
	}

	cp := *account
	m.Accounts[account.Username] = &cp
	return nil
}

// GetByID implements the AccountStore interface
func (m *MockAccountStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	for _, account := range m.Accounts {
		if account.ID == id {
			cp := *account
			return &cp, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

// GetByUsername implements the AccountStore interface
func (m *MockAccountStore) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.Account, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	account, exists := m.Accounts[username]
	if !exists {
		return nil, store.ErrAccountNotFound
	}
	cp := *account
	return &cp, nil
}

// List implements the AccountStore interface
func (m *MockAccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	accounts := make([]*domain.Account, 0, len(m.Accounts))
	for _, account := range m.Accounts {
		cp := *account
		accounts = append(accounts, &cp)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].JoinedAt.Before(accounts[j].JoinedAt)
	})
	return accounts, nil
}

// Update implements the AccountStore interface
func (m *MockAccountStore) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, account)
	}

	for username, existing := range m.Accounts {
		if existing.ID == account.ID {
			cp := *account
			cp.UpdatedAt = time.Now().UTC()
			delete(m.Accounts, username)
			m.Accounts[account.Username] = &cp
			return nil
		}
	}
	return store.ErrAccountNotFound
}

// UpdateLastLogin implements the AccountStore interface
func (m *MockAccountStore) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	if m.UpdateLastLoginFn != nil {
		return m.UpdateLastLoginFn(ctx, id)
	}

	for _, account := range m.Accounts {
		if account.ID == id {
			now := time.Now().UTC()
			account.LastLoginAt = &now
			return nil
		}
	}
	return store.ErrAccountNotFound
}

// WithTx implements the AccountStore interface by returning the same mock,
// so transactional code paths can run without a real database.
func (m *MockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return m
}
