package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/asset-registry/internal/config"
	"github.com/phrazzld/asset-registry/internal/platform/postgres"
	"github.com/phrazzld/asset-registry/internal/service"
	"github.com/phrazzld/asset-registry/internal/service/auth"
	"github.com/phrazzld/asset-registry/internal/store"
	"github.com/phrazzld/asset-registry/internal/store/memory"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the memory driver is in use.
	db *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore        store.UserStore
	categoryStore    store.CategoryStore
	assetStore       store.AssetStore
	transactionStore store.TransactionStore

	// Service interfaces
	passwordHasher     *auth.BcryptHasher
	jwtService         auth.JWTService // nil when auth is disabled
	userService        service.UserService
	categoryService    service.CategoryService
	assetService       service.AssetService
	transactionService service.TransactionService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	opts, err := serviceOptions(cfg.Service)
	if err != nil {
		return nil, err
	}

	if err := app.setupStores(ctx); err != nil {
		return nil, err
	}

	if cfg.Auth.Enabled {
		app.jwtService, err = auth.NewJWTService(cfg.Auth, opts.Clock)
		if err != nil {
			app.cleanup()
			return nil, fmt.Errorf("failed to create JWT service: %w", err)
		}
	}

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.userService = service.NewUserService(app.userStore, app.passwordHasher, opts, logger)
	app.categoryService = service.NewCategoryService(app.categoryStore, opts, logger)
	app.assetService = service.NewAssetService(app.assetStore, app.userStore, app.categoryStore, opts, logger)
	app.transactionService = service.NewTransactionService(app.transactionStore, app.assetStore, opts, logger)

	logger.Info("application initialized",
		"driver", cfg.Database.Driver,
		"auth_enabled", cfg.Auth.Enabled,
		"asset_reference_policy", opts.AssetReferences,
		"transaction_reference_policy", opts.TransactionReferences,
		"empty_list_is_error", opts.EmptyListIsError)
	return app, nil
}

// setupStores connects the configured backend and builds the four stores.
func (app *application) setupStores(ctx context.Context) error {
	switch app.config.Database.Driver {
	case driverMemory:
		mem := memory.New()
		app.userStore = mem.Users()
		app.categoryStore = mem.Categories()
		app.assetStore = mem.Assets()
		app.transactionStore = mem.Transactions()
		app.logger.Warn("using the in-memory store; data is lost on shutdown")
		return nil

	case driverPostgres:
		db, err := setupAppDatabase(ctx, app.config.Database, app.logger)
		if err != nil {
			return err
		}
		app.db = db

		if app.config.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, db, "up", app.logger); err != nil {
				app.cleanup()
				return fmt.Errorf("failed to apply migrations: %w", err)
			}
		}

		app.userStore = postgres.NewPostgresUserStore(db, app.logger)
		app.categoryStore = postgres.NewPostgresCategoryStore(db, app.logger)
		app.assetStore = postgres.NewPostgresAssetStore(db, app.logger)
		app.transactionStore = postgres.NewPostgresTransactionStore(db, app.logger)
		return nil

	default:
		return fmt.Errorf("unsupported database driver %q", app.config.Database.Driver)
	}
}

// serviceOptions converts the configured policies into service.Options.
func serviceOptions(cfg config.ServiceConfig) (service.Options, error) {
	opts := service.DefaultOptions()
	opts.EmptyListIsError = cfg.EmptyListIsError

	var err error
	if cfg.AssetReferencePolicy != "" {
		if opts.AssetReferences, err = service.ParseReferencePolicy(cfg.AssetReferencePolicy); err != nil {
			return service.Options{}, fmt.Errorf("asset reference policy: %w", err)
		}
	}
	if cfg.TransactionReferencePolicy != "" {
		if opts.TransactionReferences, err = service.ParseReferencePolicy(cfg.TransactionReferencePolicy); err != nil {
			return service.Options{}, fmt.Errorf("transaction reference policy: %w", err)
		}
	}
	return opts, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
		app.db = nil
	}
	app.logger.Info("application shutdown completed")
}
