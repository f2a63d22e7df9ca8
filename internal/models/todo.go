package models

// Todo представляет задачу пользователя. Владелец задаётся один раз при
// создании и дальше не меняется.
type Todo struct {
	ID          string `json:"id"`          // Уникальный идентификатор, назначается хранилищем
	Title       string `json:"title"`       // Заголовок задачи
	Description string `json:"description"` // Описание задачи
	Completed   bool   `json:"completed"`   // Признак выполнения
	IsUrgent    bool   `json:"isUrgent"`    // Признак срочности
	UserID      string `json:"userId"`      // Идентификатор владельца
}

// DummyTodo используется для приёма данных создания задачи из JSON-запроса.
// Поле completed от клиента не принимается: новая задача всегда не выполнена.
type DummyTodo struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	UserID      string `json:"userId" validate:"required"`
	IsUrgent    bool   `json:"isUrgent"`
}

// TodoUpdate — частичное обновление задачи. Обновляются только заголовок и
// описание; nil означает, что поле в запросе не передавалось.
type TodoUpdate struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
}
