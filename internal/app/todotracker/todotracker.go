// Package todotracker собирает приложение: хранилище, миграции, сервисы,
// маршруты и HTTP-сервер с поддержкой корректного завершения.
package todotracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/todo-tracker/internal/config"
	"github.com/magabrotheeeer/todo-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/todo-tracker/internal/migrations"
	todoservice "github.com/magabrotheeeer/todo-tracker/internal/services/todo"
	userservice "github.com/magabrotheeeer/todo-tracker/internal/services/user"
	"github.com/magabrotheeeer/todo-tracker/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер приложения и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New создает приложение: подключается к базе, применяет миграции,
// собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	userService := userservice.NewUserService(db, jwtMaker, logger)
	todoService := todoservice.NewTodoService(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, userService, todoService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и дожидается отмены контекста,
// после чего выполняет graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
