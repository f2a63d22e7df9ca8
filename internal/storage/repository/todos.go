package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/todo-tracker/internal/models"
)

// CreateTodo вставляет новую задачу и возвращает созданную запись.
func (s *Storage) CreateTodo(ctx context.Context, todo models.Todo) (*models.Todo, error) {
	const op = "storage.CreateTodo"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO todos (title, description, completed, is_urgent, user_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, title, description, completed, is_urgent, user_id`
	result := &models.Todo{}
	row := s.DB.QueryRowContext(ctx, query,
		todo.Title, todo.Description, todo.Completed, todo.IsUrgent, todo.UserID)
	if err := row.Scan(&result.ID, &result.Title, &result.Description,
		&result.Completed, &result.IsUrgent, &result.UserID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListTodos возвращает все задачи указанного владельца.
func (s *Storage) ListTodos(ctx context.Context, userID string) ([]*models.Todo, error) {
	const op = "storage.ListTodos"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, completed, is_urgent, user_id
			  FROM todos
			  WHERE user_id = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Todo
	for rows.Next() {
		var item models.Todo
		if err := rows.Scan(&item.ID, &item.Title, &item.Description,
			&item.Completed, &item.IsUrgent, &item.UserID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListAllTodos возвращает все задачи всех пользователей, без пагинации.
func (s *Storage) ListAllTodos(ctx context.Context) ([]*models.Todo, error) {
	const op = "storage.ListAllTodos"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, completed, is_urgent, user_id
			  FROM todos
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Todo
	for rows.Next() {
		var item models.Todo
		if err := rows.Scan(&item.ID, &item.Title, &item.Description,
			&item.Completed, &item.IsUrgent, &item.UserID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateTodo применяет частичное обновление заголовка и описания,
// nil-поля остаются нетронутыми. Возвращает обновлённую запись.
func (s *Storage) UpdateTodo(ctx context.Context, id string, upd models.TodoUpdate) (*models.Todo, error) {
	const op = "storage.UpdateTodo"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE todos
			  SET title = COALESCE($2, title),
			      description = COALESCE($3, description)
			  WHERE id = $1
			  RETURNING id, title, description, completed, is_urgent, user_id`
	result := &models.Todo{}
	row := s.DB.QueryRowContext(ctx, query, id, upd.Title, upd.Description)
	if err := row.Scan(&result.ID, &result.Title, &result.Description,
		&result.Completed, &result.IsUrgent, &result.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteTodo атомарно удаляет задачу и возвращает удалённую запись.
func (s *Storage) DeleteTodo(ctx context.Context, id string) (*models.Todo, error) {
	const op = "storage.DeleteTodo"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM todos
			  WHERE id = $1
			  RETURNING id, title, description, completed, is_urgent, user_id`
	result := &models.Todo{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&result.ID, &result.Title, &result.Description,
		&result.Completed, &result.IsUrgent, &result.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SetTodoCompleted выставляет признак выполнения. Операция идемпотентна:
// запись в целевом состоянии обновляется повторно без ошибки.
func (s *Storage) SetTodoCompleted(ctx context.Context, id string, completed bool) (*models.Todo, error) {
	const op = "storage.SetTodoCompleted"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE todos
			  SET completed = $2
			  WHERE id = $1
			  RETURNING id, title, description, completed, is_urgent, user_id`
	result := &models.Todo{}
	row := s.DB.QueryRowContext(ctx, query, id, completed)
	if err := row.Scan(&result.ID, &result.Title, &result.Description,
		&result.Completed, &result.IsUrgent, &result.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
