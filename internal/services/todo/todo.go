// Package services содержит бизнес-логику для управления задачами пользователя.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/todo-tracker/internal/models"
)

// TodoRepository определяет методы для работы с задачами в хранилище.
type TodoRepository interface {
	// CreateTodo добавляет новую задачу и возвращает созданную запись.
	CreateTodo(ctx context.Context, todo models.Todo) (*models.Todo, error)
	// ListTodos возвращает задачи указанного владельца.
	ListTodos(ctx context.Context, userID string) ([]*models.Todo, error)
	// ListAllTodos возвращает все задачи.
	ListAllTodos(ctx context.Context) ([]*models.Todo, error)
	// UpdateTodo применяет частичное обновление заголовка и описания.
	UpdateTodo(ctx context.Context, id string, upd models.TodoUpdate) (*models.Todo, error)
	// DeleteTodo атомарно удаляет задачу и возвращает удалённую запись.
	DeleteTodo(ctx context.Context, id string) (*models.Todo, error)
	// SetTodoCompleted выставляет признак выполнения.
	SetTodoCompleted(ctx context.Context, id string, completed bool) (*models.Todo, error)
}

// TodoService реализует бизнес-логику работы с задачами.
type TodoService struct {
	repo TodoRepository
	log  *slog.Logger
}

// NewTodoService создает новый экземпляр TodoService.
func NewTodoService(repo TodoRepository, log *slog.Logger) *TodoService {
	return &TodoService{
		repo: repo,
		log:  log,
	}
}

// Add создает новую задачу. Признак выполнения всегда сбрасывается:
// новая задача не может родиться выполненной.
func (s *TodoService) Add(ctx context.Context, req models.DummyTodo) (*models.Todo, error) {
	const op = "services.todo.Add"

	todo := models.Todo{
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		IsUrgent:    req.IsUrgent,
		UserID:      req.UserID,
	}
	created, err := s.repo.CreateTodo(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new todo", slog.String("id", created.ID))
	return created, nil
}

// List возвращает задачи владельца userID; пустой userID означает
// полный список по всем пользователям.
func (s *TodoService) List(ctx context.Context, userID string) ([]*models.Todo, error) {
	const op = "services.todo.List"

	var todos []*models.Todo
	var err error
	if userID != "" {
		todos, err = s.repo.ListTodos(ctx, userID)
	} else {
		todos, err = s.repo.ListAllTodos(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return todos, nil
}

// Update применяет частичное обновление заголовка и описания задачи.
// Срочность и владелец после создания не меняются.
func (s *TodoService) Update(ctx context.Context, id string, upd models.TodoUpdate) (*models.Todo, error) {
	const op = "services.todo.Update"

	todo, err := s.repo.UpdateTodo(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("updated todo", slog.String("id", id))
	return todo, nil
}

// Remove удаляет задачу и возвращает удалённую запись.
func (s *TodoService) Remove(ctx context.Context, id string) (*models.Todo, error) {
	const op = "services.todo.Remove"

	todo, err := s.repo.DeleteTodo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("deleted todo", slog.String("id", id))
	return todo, nil
}

// MarkDone помечает задачу выполненной. Идемпотентна.
func (s *TodoService) MarkDone(ctx context.Context, id string) (*models.Todo, error) {
	const op = "services.todo.MarkDone"

	todo, err := s.repo.SetTodoCompleted(ctx, id, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return todo, nil
}

// MarkUndone снимает отметку о выполнении. Идемпотентна.
func (s *TodoService) MarkUndone(ctx context.Context, id string) (*models.Todo, error) {
	const op = "services.todo.MarkUndone"

	todo, err := s.repo.SetTodoCompleted(ctx, id, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return todo, nil
}
