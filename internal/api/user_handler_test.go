package api

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgithinji/shoplist-api/internal/domain"
	"github.com/mgithinji/shoplist-api/internal/service/authz"
)

func newUserRouter(f *identityFixture) http.Handler {
	handler := NewUserHandler(f.service, authz.NewPolicy(), nil)

	r := chi.NewRouter()
	r.Get("/list/users", handler.ListUsers)
	r.Get("/users/{username}", handler.GetUser)
	r.Put("/users/{username}", handler.UpdateUser)
	return r
}

func TestListUsersEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("superuser sees every profile", func(t *testing.T) {
		t.Parallel()

		f := newIdentityFixture()
		admin := f.register(t, "admin", true)
		f.register(t, "alice", false)
		f.register(t, "bob", false)
		router := newUserRouter(f)

		req := asUser(newJSONRequest(t, http.MethodGet, "/list/users", nil), admin)
		rr := executeRequest(router, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var profiles []domain.CompositeProfile
		decodeBody(t, rr, &profiles)
		assert.Len(t, profiles, 3)
	})

	t.Run("regular user gets 403", func(t *testing.T) {
		t.Parallel()

		f := newIdentityFixture()
		alice := f.register(t, "alice", false)
		router := newUserRouter(f)

		req := asUser(newJSONRequest(t, http.MethodGet, "/list/users", nil), alice)
		rr := executeRequest(router, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("unauthenticated request", func(t *testing.T) {
		t.Parallel()

		router := newUserRouter(newIdentityFixture())
		rr := executeRequest(router, newJSONRequest(t, http.MethodGet, "/list/users", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGetUserEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("user may read their own profile", func(t *testing.T) {
		t.Parallel()

		f := newIdentityFixture()
		alice := f.register(t, "alice", false)
		router := newUserRouter(f)

		req := asUser(newJSONRequest(t, http.MethodGet, "/users/alice", nil), alice)
		rr := executeRequest(router, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var profile domain.CompositeProfile
		decodeBody(t, rr, &profile)
		assert.Equal(t, "alice", profile.Username)
		assert.Equal(t, "about alice", profile.Description)
	})

	t.Run("superuser may read any profile", func(t *testing.T) {
		t.Parallel()

		f := newIdentityFixture()
		admin := f.register(t, "admin", true)
		f.register(t, "alice", false)
		router := newUserRouter(f)

		req := asUser(newJSONRequest(t, http.MethodGet, "/users/alice", nil), admin)
		rr := executeRequest(router, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("another user's profile is denied with 401", func(t *testing.T) {
		t.Parallel()

		f := newIdentityFixture()
		alice := f.register(t, "alice", false)
		f.register(t, "bob", false)
		router := newUserRouter(f)

		req := asUser(newJSONRequest(t, http.MethodGet, "/users/bob", nil), alice)
		rr := executeRequest(router, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown user is 404 for a superuser", func(t *testing.T) {
		t.Parallel()

		f := newIdentityFixture()
		admin := f.register(t, "admin", true)
		router := newUserRouter(f)

		req := asUser(newJSONRequest(t, http.MethodGet, "/users/nobody", nil), admin)
		rr := executeRequest(router, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("denial check runs before existence check", func(t *testing.T) {
		t.Parallel()

		// A regular user probing an unknown username learns nothing: the
		// policy denies before the store is consulted.
		f := newIdentityFixture()
		alice := f.register(t, "alice", false)
		router := newUserRouter(f)

		req := asUser(newJSONRequest(t, http.MethodGet, "/users/nobody", nil), alice)
		rr := executeRequest(router, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUpdateUserEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("sparse update applies only the provided fields", func(t *testing.T) {
		t.Parallel()

		f := newIdentityFixture()
		alice := f.register(t, "alice", false)
		router := newUserRouter(f)

		req := asUser(newJSONRequest(t, http.MethodPut, "/users/alice", map[string]string{
			"first_name":  "Alicia",
			"description": "updated bio",
		}), alice)
		rr := executeRequest(router, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var profile domain.CompositeProfile
		decodeBody(t, rr, &profile)
		assert.Equal(t, "Alicia", profile.FirstName)
		assert.Equal(t, "Last", profile.LastName)
		assert.Equal(t, "alice@example.com", profile.Email)
		assert.Equal(t, "updated bio", profile.Description)
	})

	t.Run("superuser may update any profile", func(t *testing.T) {
		t.Parallel()

		f := newIdentityFixture()
		admin := f.register(t, "admin", true)
		f.register(t, "alice", false)
		router := newUserRouter(f)

		req := asUser(newJSONRequest(t, http.MethodPut, "/users/alice", map[string]string{
			"description": "admin was here",
		}), admin)
		rr := executeRequest(router, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("another user's profile is denied with 401", func(t *testing.T) {
		t.Parallel()

		f := newIdentityFixture()
		alice := f.register(t, "alice", false)
		f.register(t, "bob", false)
		router := newUserRouter(f)

		req := asUser(newJSONRequest(t, http.MethodPut, "/users/bob", map[string]string{
			"description": "sneaky",
		}), alice)
		rr := executeRequest(router, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		t.Parallel()

		f := newIdentityFixture()
		alice := f.register(t, "alice", false)
		router := newUserRouter(f)

		req := asUser(newJSONRequest(t, http.MethodPut, "/users/alice", map[string]string{
			"email": "not-an-email",
		}), alice)
		rr := executeRequest(router, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
