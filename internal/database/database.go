// Package database хранит пользователей и журнал выполненных операций.
// Доступно две реализации: SQLite и in-memory (для тестов и запуска без
// файла БД).
package database

import (
	"github.com/cockroachdb/errors"

	"github.com/GGmuzem/calc-api/pkg/models"
)

// Ошибки уровня хранилища
var (
	ErrUserExists   = errors.New("пользователь уже существует")
	ErrUserNotFound = errors.New("пользователь не найден")
)

// IsNotFound сообщает, что ошибка означает отсутствие записи
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// Database интерфейс хранилища сервиса
type Database interface {
	Close() error

	// MigrateDB выполняет миграцию схемы
	MigrateDB() error

	// CreateUser создает пользователя, хешируя пароль
	CreateUser(user *models.User) (int, error)

	// GetUserByLogin возвращает пользователя по логину
	GetUserByLogin(login string) (*models.User, error)

	// GetUserByID возвращает пользователя по ID
	GetUserByID(id int) (*models.User, error)

	// SaveOperation записывает операцию в журнал
	SaveOperation(rec *models.OperationRecord) error

	// GetOperationsByUser возвращает страницу журнала пользователя
	// и общее количество его записей
	GetOperationsByUser(userID, limit, offset int) ([]*models.OperationRecord, int, error)
}
