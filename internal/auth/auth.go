// Package auth отвечает за выпуск и проверку JWT-токенов.
package auth

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"

	"github.com/GGmuzem/calc-api/pkg/models"
)

// Ошибки аутентификации
var (
	ErrInvalidCredentials = errors.New("неверный логин или пароль")
	ErrInvalidToken       = errors.New("неверный или истекший токен")
)

// Claims структура для JWT-токена
type Claims struct {
	UserID int    `json:"user_id"`
	Login  string `json:"login"`
	jwt.RegisteredClaims
}

// Auth выпускает и проверяет токены. Секрет передаётся при создании,
// глобального состояния пакет не хранит.
type Auth struct {
	secret   []byte
	tokenTTL time.Duration
}

// New создает менеджер токенов с указанным секретом и временем жизни
func New(secret string, tokenTTL time.Duration) *Auth {
	return &Auth{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// GenerateToken создает JWT токен для пользователя
func (a *Auth) GenerateToken(user *models.User) (string, time.Time, error) {
	// Устанавливаем срок действия токена
	expirationTime := time.Now().Add(a.tokenTTL)

	claims := &Claims{
		UserID: user.ID,
		Login:  user.Login,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Подписываем токен секретным ключом
	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expirationTime, nil
}

// ValidateToken проверяет и валидирует JWT токен
func (a *Auth) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Проверяем метод подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Newf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
