package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/todo-tracker/internal/models"
)

// CreateUser сохраняет нового пользователя в базу данных и возвращает его UID.
// Нарушение уникальных индексов по email/phone отображается в models.ErrUserExists.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (user_name, email, phone, password_hash)
			  VALUES ($1, $2, $3, $4)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.UserName, user.Email, user.Phone, user.PasswordHash).Scan(&newUID); err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, models.ErrUserExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// FindUserByEmail возвращает пользователя по email.
func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.FindUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, user_name, email, phone, password_hash
			  FROM users
			  WHERE email = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&u.UID, &u.UserName, &u.Email, &u.Phone, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// FindUserByID возвращает пользователя по его UID.
func (s *Storage) FindUserByID(ctx context.Context, uid string) (*models.User, error) {
	const op = "storage.FindUserByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, user_name, email, phone, password_hash
			  FROM users
			  WHERE uid = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, uid)
	if err := row.Scan(&u.UID, &u.UserName, &u.Email, &u.Phone, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// FindUserByEmailOrPhone возвращает любого пользователя с совпадающим email
// или телефоном. Используется при проверке уникальности регистрации.
func (s *Storage) FindUserByEmailOrPhone(ctx context.Context, email, phone string) (*models.User, error) {
	const op = "storage.FindUserByEmailOrPhone"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, user_name, email, phone, password_hash
			  FROM users
			  WHERE email = $1 OR phone = $2
			  LIMIT 1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, email, phone)
	if err := row.Scan(&u.UID, &u.UserName, &u.Email, &u.Phone, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// FindOtherUserByEmailOrPhone возвращает пользователя с другим UID, занявшего
// переданный email или телефон. nil-указатели исключают поле из сравнения.
func (s *Storage) FindOtherUserByEmailOrPhone(ctx context.Context, uid string, email, phone *string) (*models.User, error) {
	const op = "storage.FindOtherUserByEmailOrPhone"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, user_name, email, phone, password_hash
			  FROM users
			  WHERE uid <> $1
			    AND (($2::text IS NOT NULL AND email = $2)
			      OR ($3::text IS NOT NULL AND phone = $3))
			  LIMIT 1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, uid, email, phone)
	if err := row.Scan(&u.UID, &u.UserName, &u.Email, &u.Phone, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdateUser применяет частичное обновление профиля: nil-поля остаются
// нетронутыми. Возвращает обновлённого пользователя.
func (s *Storage) UpdateUser(ctx context.Context, uid string, upd models.UserUpdate) (*models.User, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET user_name = COALESCE($2, user_name),
			      email = COALESCE($3, email),
			      phone = COALESCE($4, phone),
			      password_hash = COALESCE($5, password_hash)
			  WHERE uid = $1
			  RETURNING uid, user_name, email, phone, password_hash`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, uid, upd.UserName, upd.Email, upd.Phone, upd.PasswordHash)
	if err := row.Scan(&u.UID, &u.UserName, &u.Email, &u.Phone, &u.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrUserExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
