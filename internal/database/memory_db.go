package database

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/GGmuzem/calc-api/pkg/models"
)

// MemoryDB реализация БД в памяти без использования SQLite
type MemoryDB struct {
	users      map[string]*models.User
	userByID   map[int]*models.User
	operations []*models.OperationRecord
	mutex      sync.RWMutex
	userIDSeq  int
	opIDSeq    int64
}

// NewMemoryDB создает новую in-memory БД
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		users:      make(map[string]*models.User),
		userByID:   make(map[int]*models.User),
		operations: []*models.OperationRecord{},
		userIDSeq:  1,
	}
}

// Close просто заглушка для совместимости
func (db *MemoryDB) Close() error {
	return nil
}

// MigrateDB для in-memory не требуется миграция
func (db *MemoryDB) MigrateDB() error {
	return nil
}

// CreateUser создает нового пользователя
func (db *MemoryDB) CreateUser(user *models.User) (int, error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	if _, exists := db.users[user.Login]; exists {
		return 0, ErrUserExists
	}

	// Хешируем пароль
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	// Назначаем ID
	userID := db.userIDSeq
	db.userIDSeq++

	// Создаем копию пользователя с хешированным паролем
	newUser := &models.User{
		ID:       userID,
		Login:    user.Login,
		Password: string(hashedPassword),
	}

	db.users[user.Login] = newUser
	db.userByID[userID] = newUser

	return userID, nil
}

// GetUserByLogin возвращает пользователя по логину
func (db *MemoryDB) GetUserByLogin(login string) (*models.User, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	user, exists := db.users[login]
	if !exists {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetUserByID возвращает пользователя по ID
func (db *MemoryDB) GetUserByID(id int) (*models.User, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	user, exists := db.userByID[id]
	if !exists {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// SaveOperation записывает операцию в журнал
func (db *MemoryDB) SaveOperation(rec *models.OperationRecord) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	db.opIDSeq++
	stored := *rec
	stored.ID = db.opIDSeq
	if stored.CreatedAt == 0 {
		stored.CreatedAt = time.Now().Unix()
	}

	db.operations = append(db.operations, &stored)

	rec.ID = stored.ID
	rec.CreatedAt = stored.CreatedAt
	return nil
}

// GetOperationsByUser возвращает журнал операций пользователя
func (db *MemoryDB) GetOperationsByUser(userID, limit, offset int) ([]*models.OperationRecord, int, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	matched := []*models.OperationRecord{}
	for _, rec := range db.operations {
		if rec.UserID == userID {
			matched = append(matched, rec)
		}
	}

	// Новые записи первыми, как в SQLite-реализации
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt != matched[j].CreatedAt {
			return matched[i].CreatedAt > matched[j].CreatedAt
		}
		return matched[i].ID > matched[j].ID
	})

	total := len(matched)
	if offset >= total {
		return []*models.OperationRecord{}, total, nil
	}

	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}

	page := make([]*models.OperationRecord, 0, end-offset)
	for _, rec := range matched[offset:end] {
		copied := *rec
		page = append(page, &copied)
	}
	return page, total, nil
}
