package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/asset-registry/internal/api"
	apiMiddleware "github.com/phrazzld/asset-registry/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	users := api.NewUserHandler(app.userService, app.logger)
	categories := api.NewCategoryHandler(app.categoryService, app.logger)
	assets := api.NewAssetHandler(app.assetService, app.logger)
	transactions := api.NewTransactionHandler(app.transactionService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Login and registration stay public.
		if app.jwtService != nil {
			authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordHasher, app.logger)
			r.Post("/auth/login", authHandler.Login)
		}
		r.Post("/users", users.Create)

		r.Group(func(r chi.Router) {
			if app.jwtService != nil {
				r.Use(apiMiddleware.NewAuthMiddleware(app.jwtService).Authenticate)
			}

			r.Get("/users", users.List)
			r.Route("/users/{id}", func(r chi.Router) {
				r.Get("/", users.Get)
				r.Put("/", users.Update)
				r.Delete("/", users.Delete)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", categories.Create)
				r.Get("/", categories.List)
				r.Get("/{id}", categories.Get)
				r.Put("/{id}", categories.Update)
				r.Delete("/{id}", categories.Delete)
			})

			r.Route("/assets", func(r chi.Router) {
				r.Post("/", assets.Create)
				r.Get("/", assets.List)
				r.Get("/{id}", assets.Get)
				r.Put("/{id}", assets.Update)
				r.Delete("/{id}", assets.Delete)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Post("/", transactions.Create)
				r.Get("/", transactions.List)
				r.Get("/{id}", transactions.Get)
				r.Put("/{id}", transactions.Update)
				r.Delete("/{id}", transactions.Delete)
			})
		})
	})

	r.Get("/health", api.Health(app.config.Database.Driver))

	return r
}
