// Package models содержит доменные структуры приложения: пользователей,
// задачи и вспомогательные типы для приёма данных из JSON-запросов.
package models

// User представляет зарегистрированного пользователя системы.
// Пароль хранится только в виде bcrypt-хэша.
type User struct {
	UID          string // Уникальный идентификатор, назначается хранилищем
	UserName     string // Имя пользователя
	Email        string // Электронная почта (уникальная)
	Phone        string // Телефон (уникальный)
	PasswordHash string // Хэш пароля пользователя
}

// UserInfo — «очищенный» профиль пользователя без хэша пароля.
// Именно в таком виде пользователь сериализуется в ответах API.
type UserInfo struct {
	UID      string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Info возвращает очищенный профиль пользователя.
func (u *User) Info() *UserInfo {
	return &UserInfo{
		UID:      u.UID,
		UserName: u.UserName,
		Email:    u.Email,
		Phone:    u.Phone,
	}
}

// DummyUserUpdate используется для приёма частичного обновления профиля
// из JSON-запроса. Поля-указатели различают «поле не передано» (nil)
// и «передано пустое значение».
type DummyUserUpdate struct {
	UserName *string `json:"userName" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,min=3"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// UserUpdate — частичное обновление профиля на уровне хранилища.
// Пароль сюда попадает уже в виде хэша.
type UserUpdate struct {
	UserName     *string
	Email        *string
	Phone        *string
	PasswordHash *string
}
