package database

import (
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"

	"github.com/GGmuzem/calc-api/pkg/models"
)

// SQLiteDB реализация интерфейса Database для SQLite
type SQLiteDB struct {
	db *sql.DB
}

// New создаёт и инициализирует новый экземпляр SQLite БД
func New(dbPath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "не удалось подключиться к базе данных")
	}

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "не удалось проверить соединение с базой данных")
	}

	return &SQLiteDB{db: db}, nil
}

// Close закрывает соединение с БД
func (db *SQLiteDB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// MigrateDB выполняет миграцию базы данных
func (db *SQLiteDB) MigrateDB() error {
	// Создаем таблицу пользователей
	_, err := db.db.Exec(`
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		login TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`)
	if err != nil {
		return errors.Wrap(err, "не удалось создать таблицу users")
	}

	// Создаем таблицу журнала операций
	_, err = db.db.Exec(`
	CREATE TABLE IF NOT EXISTS operations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		operation TEXT NOT NULL,
		a REAL NOT NULL,
		b REAL NOT NULL,
		result REAL,
		status TEXT NOT NULL,
		error TEXT,
		user_id INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	)`)
	if err != nil {
		return errors.Wrap(err, "не удалось создать таблицу operations")
	}

	return nil
}

// UserExists проверяет существование пользователя с указанным логином
func (db *SQLiteDB) UserExists(login string) (bool, error) {
	var count int
	err := db.db.QueryRow("SELECT COUNT(*) FROM users WHERE login = ?", login).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateUser создает нового пользователя
func (db *SQLiteDB) CreateUser(user *models.User) (int, error) {
	// Проверяем, существует ли пользователь
	exists, err := db.UserExists(user.Login)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrUserExists
	}

	// Хешируем пароль
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	// Сохраняем пользователя
	result, err := db.db.Exec(
		"INSERT INTO users (login, password, created_at) VALUES (?, ?, ?)",
		user.Login, string(hashedPassword), time.Now().Unix(),
	)
	if err != nil {
		return 0, errors.Wrap(err, "не удалось сохранить пользователя")
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "не удалось получить ID пользователя")
	}

	return int(userID), nil
}

// GetUserByLogin возвращает пользователя по логину
func (db *SQLiteDB) GetUserByLogin(login string) (*models.User, error) {
	var user models.User
	err := db.db.QueryRow(
		"SELECT id, login, password FROM users WHERE login = ?", login,
	).Scan(&user.ID, &user.Login, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "не удалось получить пользователя")
	}
	return &user, nil
}

// GetUserByID возвращает пользователя по ID
func (db *SQLiteDB) GetUserByID(id int) (*models.User, error) {
	var user models.User
	err := db.db.QueryRow(
		"SELECT id, login, password FROM users WHERE id = ?", id,
	).Scan(&user.ID, &user.Login, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "не удалось получить пользователя")
	}
	return &user, nil
}

// SaveOperation записывает выполненную операцию в журнал
func (db *SQLiteDB) SaveOperation(rec *models.OperationRecord) error {
	createdAt := rec.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().Unix()
	}

	result, err := db.db.Exec(`
	INSERT INTO operations (operation, a, b, result, status, error, user_id, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Operation, rec.A, rec.B, rec.Result, rec.Status, rec.Error, rec.UserID, createdAt,
	)
	if err != nil {
		return errors.Wrap(err, "не удалось сохранить операцию")
	}

	id, err := result.LastInsertId()
	if err == nil {
		rec.ID = id
	}
	rec.CreatedAt = createdAt
	return nil
}

// GetOperationsByUser возвращает журнал операций пользователя
func (db *SQLiteDB) GetOperationsByUser(userID, limit, offset int) ([]*models.OperationRecord, int, error) {
	var total int
	err := db.db.QueryRow(
		"SELECT COUNT(*) FROM operations WHERE user_id = ?", userID,
	).Scan(&total)
	if err != nil {
		return nil, 0, errors.Wrap(err, "не удалось подсчитать операции")
	}

	rows, err := db.db.Query(`
	SELECT id, operation, a, b, result, status, error, user_id, created_at
	FROM operations
	WHERE user_id = ?
	ORDER BY created_at DESC, id DESC
	LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, 0, errors.Wrap(err, "не удалось получить операции")
	}
	defer rows.Close()

	records := []*models.OperationRecord{}
	for rows.Next() {
		var rec models.OperationRecord
		var result sql.NullFloat64
		var errText sql.NullString

		err := rows.Scan(&rec.ID, &rec.Operation, &rec.A, &rec.B, &result,
			&rec.Status, &errText, &rec.UserID, &rec.CreatedAt)
		if err != nil {
			return nil, 0, errors.Wrap(err, "не удалось прочитать запись операции")
		}

		if result.Valid {
			rec.Result = result.Float64
		}
		if errText.Valid {
			rec.Error = errText.String
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "ошибка при итерации записей")
	}

	return records, total, nil
}
