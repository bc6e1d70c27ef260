package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mgithinji/shoplist-api/internal/config"
	"github.com/mgithinji/shoplist-api/internal/platform/logger"
	"github.com/mgithinji/shoplist-api/internal/platform/postgres"
	"github.com/mgithinji/shoplist-api/internal/service/auth"
	"github.com/mgithinji/shoplist-api/internal/service/authz"
	"github.com/mgithinji/shoplist-api/internal/service/identity"
	"github.com/mgithinji/shoplist-api/internal/service/shoplist"
	"github.com/mgithinji/shoplist-api/internal/store"
)

// application holds the initialized dependency graph for the server:
// configuration, logger, database handle, stores and services. Handlers are
// created from it when the router is set up.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	accountStore store.AccountStore
	profileStore store.ProfileStore
	listStore    store.ShoppingListStore
	itemStore    store.ItemStore

	jwtService      auth.JWTService
	passwordHasher  *auth.BcryptHasher
	identityService *identity.Service
	shoplistService *shoplist.Service
	policy          *authz.Policy
}

// newApplication loads configuration and builds the full dependency graph.
// Components are initialized in dependency order so a failure surfaces at
// the first broken layer.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	app := &application{
		config:         cfg,
		logger:         log,
		db:             db,
		accountStore:   postgres.NewAccountStore(db, log),
		profileStore:   postgres.NewProfileStore(db, log),
		listStore:      postgres.NewShoppingListStore(db, log),
		itemStore:      postgres.NewItemStore(db, log),
		jwtService:     jwtService,
		passwordHasher: auth.NewBcryptHasher(),
		policy:         authz.NewPolicy(),
	}

	app.identityService = identity.NewService(
		db,
		app.accountStore,
		app.profileStore,
		app.passwordHasher,
		log,
	)
	app.shoplistService = shoplist.NewService(app.listStore, app.itemStore, log)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", slog.Any("error", err))
		}
	}
}
