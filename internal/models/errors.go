package models

import "errors"

// Ошибки доменного уровня. Хранилище и сервисы оборачивают их через %w,
// обработчики различают через errors.Is и выбирают HTTP-статус.
var (
	// ErrNotFound — запись с указанным идентификатором отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrUserExists — email или телефон уже заняты другим пользователем.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	// Текст намеренно одинаковый для обоих случаев.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
