// Package done реализует HTTP-обработчик отметки задачи выполненной.
// Операция идемпотентна: повторный вызов оставляет задачу выполненной.
package done

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

// Handler управляет HTTP-запросами на отметку задачи выполненной.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики отметки выполнения.
type Service interface {
	MarkDone(ctx context.Context, id string) (*models.Todo, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.todo.done"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	todo, err := h.service.MarkDone(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Error("todo not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Todo not found"))
			return
		}
		log.Error("failed to mark todo as done", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("Error marking todo as done"))
		return
	}

	log.Info("marked todo as done", slog.String("id", id))
	render.JSON(w, r, response.OKWithData("Todo marked as done", map[string]any{
		"todo": todo,
	}))
}
