// Package list реализует HTTP-обработчик получения списка задач.
//
// Идентификатор владельца берется из URL, при его отсутствии — из query
// параметра userId. Без идентификатора возвращаются все задачи.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/todo-tracker/internal/http/response"
	"github.com/magabrotheeeer/todo-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/todo-tracker/internal/models"
)

// Handler управляет HTTP-запросами на получение списка задач.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения списка задач.
type Service interface {
	List(ctx context.Context, userID string) ([]*models.Todo, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить список задач
// @Description Возвращает задачи пользователя вместе с их количеством.
// @Tags Todos
// @Produce  json
// @Param userId path string false "Идентификатор владельца"
// @Success 200 {object} response.Response "Список задач"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при получении списка"
// @Router /api/todos/user/{userId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.todo.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := chi.URLParam(r, "userId")
	if userID == "" {
		userID = r.URL.Query().Get("userId")
	}

	todos, err := h.service.List(r.Context(), userID)
	if err != nil {
		log.Error("failed to list todos", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error getting todos"))
		return
	}

	log.Info("todos listed", slog.Int("count", len(todos)))
	render.JSON(w, r, response.OKWithData("Todos retrieved successfully", map[string]any{
		"todos": todos,
		"count": len(todos),
	}))
}
