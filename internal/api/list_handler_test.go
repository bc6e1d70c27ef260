package api

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgithinji/shoplist-api/internal/domain"
	"github.com/mgithinji/shoplist-api/internal/service/auth"
)

func newListRouter(f *shoplistFixture) http.Handler {
	handler := NewListHandler(f.service, nil)

	r := chi.NewRouter()
	r.Get("/shoppinglists", handler.ListLists)
	r.Post("/shoppinglists", handler.CreateList)
	r.Get("/shoppinglists/{list_id}", handler.GetList)
	r.Put("/shoppinglists/{list_id}", handler.UpdateList)
	r.Delete("/shoppinglists/{list_id}", handler.DeleteList)
	return r
}

func testCaller(username string) auth.Identity {
	return auth.Identity{AccountID: uuid.New(), Username: username}
}

func TestListListsEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("returns only the caller's lists", func(t *testing.T) {
		t.Parallel()

		f := newShoplistFixture()
		caller := testCaller("alice")
		other := testCaller("bob")
		f.seedList(t, caller, "Groceries")
		f.seedList(t, caller, "Hardware")
		f.seedList(t, other, "Not yours")
		router := newListRouter(f)

		req := asUser(newJSONRequest(t, http.MethodGet, "/shoppinglists", nil), caller)
		rr := executeRequest(router, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var lists []domain.ShoppingList
		decodeBody(t, rr, &lists)
		assert.Len(t, lists, 2)
	})

	t.Run("no lists yields an empty array", func(t *testing.T) {
		t.Parallel()

		router := newListRouter(newShoplistFixture())
		req := asUser(newJSONRequest(t, http.MethodGet, "/shoppinglists", nil), testCaller("alice"))
		rr := executeRequest(router, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("unauthenticated request", func(t *testing.T) {
		t.Parallel()

		router := newListRouter(newShoplistFixture())
		rr := executeRequest(router, newJSONRequest(t, http.MethodGet, "/shoppinglists", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCreateListEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("creates a list", func(t *testing.T) {
		t.Parallel()

		f := newShoplistFixture()
		router := newListRouter(f)
		caller := testCaller("alice")

		req := asUser(newJSONRequest(t, http.MethodPost, "/shoppinglists", map[string]string{
			"name":        "Weekly shop",
			"description": "Saturday market run",
		}), caller)
		rr := executeRequest(router, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var list domain.ShoppingList
		decodeBody(t, rr, &list)
		assert.Equal(t, "Weekly shop", list.Name)
		assert.Contains(t, f.lists.Lists, list.ID)
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		router := newListRouter(newShoplistFixture())
		req := asUser(newJSONRequest(t, http.MethodPost, "/shoppinglists", map[string]string{
			"description": "no name",
		}), testCaller("alice"))
		rr := executeRequest(router, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetListEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("owner retrieves their list", func(t *testing.T) {
		t.Parallel()

		f := newShoplistFixture()
		caller := testCaller("alice")
		list := f.seedList(t, caller, "Weekly shop")
		router := newListRouter(f)

		req := asUser(newJSONRequest(t, http.MethodGet, "/shoppinglists/"+list.ID.String(), nil), caller)
		rr := executeRequest(router, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var got domain.ShoppingList
		decodeBody(t, rr, &got)
		assert.Equal(t, list.ID, got.ID)
	})

	t.Run("someone else's list is 404", func(t *testing.T) {
		t.Parallel()

		f := newShoplistFixture()
		list := f.seedList(t, testCaller("bob"), "Not yours")
		router := newListRouter(f)

		req := asUser(newJSONRequest(t, http.MethodGet, "/shoppinglists/"+list.ID.String(), nil), testCaller("alice"))
		rr := executeRequest(router, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("malformed list ID", func(t *testing.T) {
		t.Parallel()

		router := newListRouter(newShoplistFixture())
		req := asUser(newJSONRequest(t, http.MethodGet, "/shoppinglists/not-a-uuid", nil), testCaller("alice"))
		rr := executeRequest(router, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateListEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("owner updates their list", func(t *testing.T) {
		t.Parallel()

		f := newShoplistFixture()
		caller := testCaller("alice")
		list := f.seedList(t, caller, "Weekly shop")
		router := newListRouter(f)

		req := asUser(newJSONRequest(t, http.MethodPut, "/shoppinglists/"+list.ID.String(), map[string]string{
			"name":        "Monthly shop",
			"description": "bulk run",
		}), caller)
		rr := executeRequest(router, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var got domain.ShoppingList
		decodeBody(t, rr, &got)
		assert.Equal(t, "Monthly shop", got.Name)
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		f := newShoplistFixture()
		caller := testCaller("alice")
		list := f.seedList(t, caller, "Weekly shop")
		router := newListRouter(f)

		req := asUser(newJSONRequest(t, http.MethodPut, "/shoppinglists/"+list.ID.String(), map[string]string{}), caller)
		rr := executeRequest(router, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("someone else's list is 404", func(t *testing.T) {
		t.Parallel()

		f := newShoplistFixture()
		list := f.seedList(t, testCaller("bob"), "Not yours")
		router := newListRouter(f)

		req := asUser(newJSONRequest(t, http.MethodPut, "/shoppinglists/"+list.ID.String(), map[string]string{
			"name": "hijack",
		}), testCaller("alice"))
		rr := executeRequest(router, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteListEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("owner deletes their list", func(t *testing.T) {
		t.Parallel()

		f := newShoplistFixture()
		caller := testCaller("alice")
		list := f.seedList(t, caller, "Weekly shop")
		router := newListRouter(f)

		req := asUser(newJSONRequest(t, http.MethodDelete, "/shoppinglists/"+list.ID.String(), nil), caller)
		rr := executeRequest(router, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.NotContains(t, f.lists.Lists, list.ID)
	})

	t.Run("absent list is 404", func(t *testing.T) {
		t.Parallel()

		router := newListRouter(newShoplistFixture())
		req := asUser(newJSONRequest(t, http.MethodDelete, "/shoppinglists/"+uuid.NewString(), nil), testCaller("alice"))
		rr := executeRequest(router, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
