// Package todotracker предоставляет маршруты для основного приложения.
package todotracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/todo-tracker/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/todo-tracker/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/todo-tracker/internal/http/handlers/health"
	todocreate "github.com/magabrotheeeer/todo-tracker/internal/http/handlers/todo/create"
	tododone "github.com/magabrotheeeer/todo-tracker/internal/http/handlers/todo/done"
	todolist "github.com/magabrotheeeer/todo-tracker/internal/http/handlers/todo/list"
	todoremove "github.com/magabrotheeeer/todo-tracker/internal/http/handlers/todo/remove"
	todoundone "github.com/magabrotheeeer/todo-tracker/internal/http/handlers/todo/undone"
	todoupdate "github.com/magabrotheeeer/todo-tracker/internal/http/handlers/todo/update"
	userread "github.com/magabrotheeeer/todo-tracker/internal/http/handlers/user/read"
	userupdate "github.com/magabrotheeeer/todo-tracker/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/todo-tracker/internal/http/middlewarectx"
	todoservice "github.com/magabrotheeeer/todo-tracker/internal/services/todo"
	userservice "github.com/magabrotheeeer/todo-tracker/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, parser middlewarectx.TokenParser, userService *userservice.UserService, todoService *todoservice.TodoService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, userService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, userService).ServeHTTP)

		// Профили доступны только с JWT токеном
		r.Route("/users", func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(parser, logger))
			r.Get("/{id}", userread.New(logger, userService).ServeHTTP)
			r.Put("/{id}", userupdate.New(logger, userService).ServeHTTP)
		})

		r.Route("/todos", func(r chi.Router) {
			r.Post("/", todocreate.New(logger, todoService).ServeHTTP)
			r.Get("/", todolist.New(logger, todoService).ServeHTTP)
			r.Get("/user/{userId}", todolist.New(logger, todoService).ServeHTTP)
			r.Put("/{id}", todoupdate.New(logger, todoService).ServeHTTP)
			r.Delete("/{id}", todoremove.New(logger, todoService).ServeHTTP)
			r.Patch("/{id}/done", tododone.New(logger, todoService).ServeHTTP)
			r.Patch("/{id}/undone", todoundone.New(logger, todoService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
