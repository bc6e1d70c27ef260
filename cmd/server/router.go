package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mgithinji/shoplist-api/internal/api"
	apiMiddleware "github.com/mgithinji/shoplist-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.identityService,
		app.accountStore,
		app.jwtService,
		app.passwordHasher,
	)
	userHandler := api.NewUserHandler(app.identityService, app.policy, app.logger)
	listHandler := api.NewListHandler(app.shoplistService, app.logger)
	itemHandler := api.NewItemHandler(app.shoplistService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Register routes
	r.Route("/api/v1", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/logout", authHandler.Logout)
			r.Put("/auth/reset-password", authHandler.ResetPassword)

			// Composite profile endpoints
			r.Get("/list/users", userHandler.ListUsers)
			r.Get("/users/{username}", userHandler.GetUser)
			r.Put("/users/{username}", userHandler.UpdateUser)

			// Shopping list endpoints
			r.Get("/shoppinglists", listHandler.ListLists)
			r.Post("/shoppinglists", listHandler.CreateList)

			// Items across all lists. Registered as a static segment so it
			// takes priority over the {list_id} parameter below.
			r.Get("/shoppinglists/items", itemHandler.ListAllItems)
			r.Get("/shoppinglists/items/{item_id}", itemHandler.GetItem)
			r.Put("/shoppinglists/items/{item_id}", itemHandler.UpdateItem)
			r.Delete("/shoppinglists/items/{item_id}", itemHandler.DeleteItem)

			r.Get("/shoppinglists/{list_id}", listHandler.GetList)
			r.Put("/shoppinglists/{list_id}", listHandler.UpdateList)
			r.Delete("/shoppinglists/{list_id}", listHandler.DeleteList)
			r.Get("/shoppinglists/{list_id}/items", itemHandler.ListItems)
			r.Post("/shoppinglists/{list_id}/items", itemHandler.CreateItem)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
