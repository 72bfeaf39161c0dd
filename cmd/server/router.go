package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jsaputra/taskboard-api/internal/api"
	apiMiddleware "github.com/jsaputra/taskboard-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if app.config.Server.RequestTimeoutS > 0 {
		r.Use(middleware.Timeout(time.Duration(app.config.Server.RequestTimeoutS) * time.Second))
	}
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.tokenStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
		app.config.Auth,
	)
	userHandler := api.NewUserHandler(
		app.userStore,
		app.passwordHasher,
		app.passwordVerifier,
		app.config.Auth,
	)
	projectHandler := api.NewProjectHandler(app.projectStore)
	taskHandler := api.NewTaskHandler(app.taskStore, app.projectStore, app.userStore)
	labelHandler := api.NewLabelHandler(app.labelStore)
	commentHandler := api.NewCommentHandler(app.commentStore, app.taskStore, app.userStore)

	authMiddleware := apiMiddleware.NewAuthMiddleware(
		app.jwtService,
		app.tokenStore,
		app.config.Auth.TokenTransport,
	)

	r.Route("/api", func(r chi.Router) {
		// Public authentication endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)

			// Profile routes act on the caller's own account only
			r.Group(func(r chi.Router) {
				r.Use(apiMiddleware.RequireOwner("id"))
				r.Get("/user/profile/{id}", userHandler.GetProfile)
				r.Put("/user/profile/{id}", userHandler.UpdateProfile)
				r.Delete("/user/profile/{id}", userHandler.DeleteProfile)
				r.Put("/user/change-password/{id}", userHandler.ChangePassword)
			})

			r.Get("/projects", projectHandler.List)
			r.Post("/projects", projectHandler.Create)
			r.Get("/projects/{projectId}", projectHandler.Get)
			r.Put("/projects/{projectId}", projectHandler.Update)
			r.Delete("/projects/{projectId}", projectHandler.Delete)

			r.Post("/tasks/project/{projectId}", taskHandler.Create)
			r.Get("/tasks/project/{projectId}", taskHandler.ListByProject)
			r.Get("/tasks/user/{userId}", taskHandler.ListByUser)
			r.Get("/tasks/{taskId}", taskHandler.Get)
			r.Put("/tasks/{taskId}", taskHandler.Update)
			r.Delete("/tasks/{taskId}", taskHandler.Delete)

			r.Get("/labels", labelHandler.List)
			r.Post("/labels", labelHandler.Create)
			r.Get("/labels/{labelId}", labelHandler.Get)
			r.Put("/labels/{labelId}", labelHandler.Update)
			r.Delete("/labels/{labelId}", labelHandler.Delete)

			r.Post("/comments", commentHandler.Create)
			r.Get("/comments/task/{taskId}", commentHandler.ListByTask)
			r.Get("/comments/user/{userId}", commentHandler.ListByUser)
			r.Get("/comments/{commentId}", commentHandler.Get)
			r.Put("/comments/{commentId}", commentHandler.Update)
			r.Delete("/comments/{commentId}", commentHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
