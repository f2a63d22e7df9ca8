// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/todo-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/todo-tracker/internal/lib/password"
	"github.com/magabrotheeeer/todo-tracker/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// FindUserByEmail возвращает пользователя по email или models.ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// FindUserByID возвращает пользователя по UID или models.ErrNotFound.
	FindUserByID(ctx context.Context, uid string) (*models.User, error)

	// FindUserByEmailOrPhone возвращает любого пользователя с таким email
	// или телефоном, models.ErrNotFound — если занятых нет.
	FindUserByEmailOrPhone(ctx context.Context, email, phone string) (*models.User, error)

	// FindOtherUserByEmailOrPhone ищет другого пользователя (uid отличается),
	// занявшего email или телефон.
	FindOtherUserByEmailOrPhone(ctx context.Context, uid string, email, phone *string) (*models.User, error)

	// UpdateUser применяет частичное обновление и возвращает результат.
	UpdateUser(ctx context.Context, uid string, upd models.UserUpdate) (*models.User, error)
}

// UserService отвечает за регистрацию, вход и работу с профилем.
type UserService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *UserService {
	return &UserService{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Register создает нового пользователя. Сначала проверяется занятость email
// и телефона: при конфликте пароль не хэшируется и запись не создаётся.
func (s *UserService) Register(ctx context.Context, userName, email, phone, rawPassword string) (*models.UserInfo, error) {
	const op = "services.user.Register"

	existing, err := s.users.FindUserByEmailOrPhone(ctx, email, phone)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserExists)
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		UserName:     userName,
		Email:        email,
		Phone:        phone,
		PasswordHash: hashed,
	}
	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("registered new user", slog.String("uid", uid))

	user.UID = uid
	return user.Info(), nil
}

// Login проверяет пароль пользователя и выпускает JWT с {userId, email}.
// Неизвестный email и неверный пароль дают одну и ту же ошибку.
func (s *UserService) Login(ctx context.Context, email, rawPassword string) (string, *models.UserInfo, error) {
	const op = "services.user.Login"

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	token, err := s.jwtMaker.GenerateToken(user.UID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user logged in", slog.String("uid", user.UID))
	return token, user.Info(), nil
}

// Get возвращает очищенный профиль пользователя по UID.
func (s *UserService) Get(ctx context.Context, uid string) (*models.UserInfo, error) {
	const op = "services.user.Get"

	user, err := s.users.FindUserByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user.Info(), nil
}

// Update применяет частичное обновление профиля. Если меняется email или
// телефон, сначала проверяется их занятость другим пользователем; новый
// пароль перед сохранением хэшируется.
func (s *UserService) Update(ctx context.Context, uid string, req models.DummyUserUpdate) (*models.UserInfo, error) {
	const op = "services.user.Update"

	if req.Email != nil || req.Phone != nil {
		other, err := s.users.FindOtherUserByEmailOrPhone(ctx, uid, req.Email, req.Phone)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if other != nil {
			return nil, fmt.Errorf("%s: %w", op, models.ErrUserExists)
		}
	}

	upd := models.UserUpdate{
		UserName: req.UserName,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if req.Password != nil {
		hashed, err := password.GetHash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		upd.PasswordHash = &hashed
	}

	user, err := s.users.UpdateUser(ctx, uid, upd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("updated user profile", slog.String("uid", uid))
	return user.Info(), nil
}
