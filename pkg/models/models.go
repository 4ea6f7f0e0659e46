package models

// OperationRequest входные данные арифметической операции.
// Поля объявлены указателями, чтобы отличать отсутствующий операнд
// от явного нуля при валидации.
type OperationRequest struct {
	A *float64 `json:"a" validate:"required"`
	B *float64 `json:"b" validate:"required"`
}

// OperationResponse успешный ответ операции
type OperationResponse struct {
	Result float64 `json:"result"`
}

// ErrorResponse ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// Статусы записей журнала операций
const (
	OperationStatusSuccess = "SUCCESS"
	OperationStatusError   = "ERROR"
)

// OperationRecord запись журнала выполненных операций
type OperationRecord struct {
	ID        int64   `json:"id"`
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Result    float64 `json:"result"`
	Status    string  `json:"status"`
	Error     string  `json:"error,omitempty"`
	UserID    int     `json:"user_id,omitempty"`
	CreatedAt int64   `json:"created_at,omitempty"`
}

// User представляет пользователя системы
type User struct {
	ID       int    `json:"id"`
	Login    string `json:"login"`
	Password string `json:"-"` // Не сериализуем пароль в JSON
}

// LoginRequest используется для запроса на вход
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse ответ на успешный вход
type LoginResponse struct {
	Token   string `json:"token"`
	UserID  int    `json:"user_id"`
	Login   string `json:"login"`
	Expires string `json:"expires"`
}

// RegisterRequest используется для регистрации
type RegisterRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}
