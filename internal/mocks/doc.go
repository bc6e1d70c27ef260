// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of the store and auth
// interfaces used throughout the application, so tests across packages can
// share one set of behaviors instead of defining inline mocks everywhere.
//
// Each mock follows the same shape:
//
//   - Function fields (CreateFn, GetByIDFn, ...) override individual
//     methods for a single test case.
//   - A map-backed default implementation stands in for the database when
//     no override is set, including the store package's sentinel errors.
//   - WithTx returns the mock itself, so transactional code paths can run
//     against a nil *sql.Tx.
//
// Usage:
//
//	accounts := mocks.NewMockAccountStore()
//	accounts.CreateFn = func(ctx context.Context, a *domain.Account) error {
//	    return store.ErrUsernameExists
//	}
package mocks
