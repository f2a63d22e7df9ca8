// Package create реализует HTTP-обработчик добавления новой задачи.
//
// Handler принимает JSON-запрос с данными задачи, валидирует их,
// вызывает бизнес-логику создания и возвращает созданную запись.
// Новая задача всегда создается невыполненной.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/todo-tracker/internal/http/response"
	"github.com/magabrotheeeer/todo-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/todo-tracker/internal/models"
)

// Handler управляет HTTP-запросами на создание задач.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания задачи.
type Service interface {
	Add(ctx context.Context, req models.DummyTodo) (*models.Todo, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить задачу
// @Description Создает новую задачу для указанного пользователя.
// @Tags Todos
// @Accept  json
// @Produce  json
// @Param request body models.DummyTodo true "Данные новой задачи"
// @Success 201 {object} response.Response "Задача создана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании"
// @Router /api/todos/add [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.todo.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyTodo
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	todo, err := h.service.Add(r.Context(), req)
	if err != nil {
		log.Error("failed to add todo", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error adding todo"))
		return
	}

	log.Info("created new todo", slog.String("id", todo.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData("Todo added successfully", map[string]any{
		"todo": todo,
	}))
}
