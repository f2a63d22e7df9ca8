// Package undone реализует HTTP-обработчик снятия отметки о выполнении.
// Операция идемпотентна: повторный вызов оставляет задачу невыполненной.
package undone

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/todo-tracker/internal/http/response"
	"github.com/magabrotheeeer/todo-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/todo-tracker/internal/models"
)

// Handler управляет HTTP-запросами на снятие отметки о выполнении.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики снятия отметки.
type Service interface {
	MarkUndone(ctx context.Context, id string) (*models.Todo, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.todo.undone"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	todo, err := h.service.MarkUndone(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Error("todo not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Todo not found"))
			return
		}
		log.Error("failed to mark todo as undone", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error marking todo as undone"))
		return
	}

	log.Info("marked todo as undone", slog.String("id", id))
	render.JSON(w, r, response.OKWithData("Todo marked as undone", map[string]any{
		"todo": todo,
	}))
}
