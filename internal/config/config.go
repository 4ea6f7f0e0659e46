// Package config собирает настройки сервиса из .env файла и переменных
// окружения в явную структуру, которая один раз создаётся в main и
// передаётся дальше. Глобального состояния пакет не хранит.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config настройки сервиса
type Config struct {
	HTTPPort    string
	GRPCPort    string
	DBType      string // memory или sqlite
	DBPath      string
	JWTSecret   string
	TokenTTL    time.Duration
	LogLevel    string
	TemplateDir string
	StaticDir   string
}

// Load читает конфигурацию из .env (если есть) и переменных окружения
func Load() *Config {
	// .env может отсутствовать, это не ошибка
	_ = godotenv.Load()

	return &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		GRPCPort:    getEnv("GRPC_PORT", "50052"),
		DBType:      getEnv("DB_TYPE", "memory"),
		DBPath:      getEnv("DB_PATH", "./calculator.db"),
		JWTSecret:   getEnv("JWT_SECRET", "super_secret_key_change_in_production"),
		TokenTTL:    getDurationEnv("TOKEN_TTL_MINUTES", 60),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		TemplateDir: getEnv("TEMPLATE_DIR", "./web/templates"),
		StaticDir:   getEnv("STATIC_DIR", "./web/static"),
	}
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getDurationEnv читает срок в минутах из переменной окружения
func getDurationEnv(key string, fallbackMinutes int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return time.Duration(fallbackMinutes) * time.Minute
}
