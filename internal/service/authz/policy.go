// Package authz decides whether an authenticated caller may act on a target
// resource. It is pure policy: all facts it needs (username, superuser flag)
// arrive inside the caller's token claims, so no store access happens here.
package authz

import (
	"errors"

	"github.com/mgithinji/shoplist-api/internal/service/auth"
)

// Authorization errors. The two denial errors are distinct: the admin-only
// listing endpoint answers 403 while the self-or-admin profile endpoints
// answer 401, and the HTTP boundary maps each error to its own status code.
var (
	// ErrNotOwner indicates an authenticated caller who is neither the
	// target user nor a superuser.
	ErrNotOwner = errors.New("caller is not the resource owner")

	// ErrAdminOnly indicates a non-superuser calling an admin-only endpoint.
	ErrAdminOnly = errors.New("caller is not an administrator")
)

// Policy makes per-request authorization decisions.
type Policy struct{}

// NewPolicy creates a new Policy.
func NewPolicy() *Policy {
	return &Policy{}
}

// CanViewProfile reports whether the caller may read or update the profile
// of targetUsername: permitted for the user themselves and for superusers.
// Returns ErrNotOwner on denial.
func (p *Policy) CanViewProfile(caller auth.Identity, targetUsername string) error {
	if caller.Username == targetUsername || caller.Superuser {
		return nil
	}
	return ErrNotOwner
}

// CanListAccounts reports whether the caller may enumerate every account's
// profile. Superusers only. Returns ErrAdminOnly on denial.
func (p *Policy) CanListAccounts(caller auth.Identity) error {
	if caller.Superuser {
		return nil
	}
	return ErrAdminOnly
}
