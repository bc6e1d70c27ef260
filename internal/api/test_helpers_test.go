package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgithinji/shoplist-api/internal/api/shared"
	"github.com/mgithinji/shoplist-api/internal/domain"
	"github.com/mgithinji/shoplist-api/internal/mocks"
	"github.com/mgithinji/shoplist-api/internal/service/auth"
	"github.com/mgithinji/shoplist-api/internal/service/identity"
	"github.com/mgithinji/shoplist-api/internal/service/shoplist"
	"github.com/mgithinji/shoplist-api/internal/store"
)

// identityFixture bundles the mock stores with an identity service wired
// through a pass-through transaction runner.
type identityFixture struct {
	accounts *mocks.MockAccountStore
	profiles *mocks.MockProfileStore
	service  *identity.Service
}

func newIdentityFixture() *identityFixture {
	accounts := mocks.NewMockAccountStore()
	profiles := mocks.NewMockProfileStore()
	runner := func(ctx context.Context, fn store.TxFn) error {
		return fn(ctx, (*sql.Tx)(nil))
	}
	return &identityFixture{
		accounts: accounts,
		profiles: profiles,
		service:  identity.NewServiceWithRunner(runner, accounts, profiles, &mocks.MockPasswordHasher{}, nil),
	}
}

// register creates a user through the service and returns its identity.
func (f *identityFixture) register(t *testing.T, username string, superuser bool) auth.Identity {
	t.Helper()

	_, err := f.service.Register(context.Background(), identity.RegisterInput{
		Username:    username,
		Email:       username + "@example.com",
		Password:    "password123",
		FirstName:   "First",
		LastName:    "Last",
		Description: "about " + username,
	})
	require.NoError(t, err)

	account := f.accounts.Accounts[username]
	account.Superuser = superuser

	return auth.Identity{
		AccountID: account.ID,
		Username:  username,
		Superuser: superuser,
	}
}

// shoplistFixture bundles the mock stores with a shoplist service.
type shoplistFixture struct {
	lists   *mocks.MockShoppingListStore
	items   *mocks.MockItemStore
	service *shoplist.Service
}

func newShoplistFixture() *shoplistFixture {
	lists := mocks.NewMockShoppingListStore()
	items := mocks.NewMockItemStore()
	items.ListStore = lists
	lists.ItemStore = items
	return &shoplistFixture{
		lists:   lists,
		items:   items,
		service: shoplist.NewService(lists, items, nil),
	}
}

func (f *shoplistFixture) seedList(t *testing.T, caller auth.Identity, name string) *domain.ShoppingList {
	t.Helper()

	list, err := f.service.CreateList(context.Background(), caller.AccountID, shoplist.ListInput{Name: name})
	require.NoError(t, err)
	return list
}

func (f *shoplistFixture) seedItem(t *testing.T, caller auth.Identity, list *domain.ShoppingList, name string) *domain.Item {
	t.Helper()

	item, err := f.service.CreateItem(context.Background(), caller.AccountID, list.ID, shoplist.ItemInput{Name: name})
	require.NoError(t, err)
	return item
}

// newJSONRequest builds a request carrying the JSON-encoded body.
func newJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser attaches the caller's identity to the request context, standing in
// for the authentication middleware.
func asUser(req *http.Request, caller auth.Identity) *http.Request {
	ctx := context.WithValue(req.Context(), shared.IdentityContextKey, caller)
	return req.WithContext(ctx)
}

// executeRequest runs the request through the router and captures the response.
func executeRequest(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeBody unmarshals the recorded response body into v.
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v))
}
