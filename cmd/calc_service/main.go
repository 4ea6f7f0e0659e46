package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GGmuzem/calc-api/internal/auth"
	"github.com/GGmuzem/calc-api/internal/config"
	"github.com/GGmuzem/calc-api/internal/database"
	"github.com/GGmuzem/calc-api/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	log.Infow("сервис калькулятора запускается",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"db_type", cfg.DBType,
	)

	// Открываем хранилище
	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalw("ошибка инициализации базы данных", "error", err)
	}
	defer db.Close()

	if err := db.MigrateDB(); err != nil {
		log.Fatalw("ошибка миграции базы данных", "error", err)
	}

	authMgr := auth.New(cfg.JWTSecret, cfg.TokenTTL)
	srv := server.New(cfg, log, db, authMgr)

	grpcSrv, err := server.StartGRPCServer(cfg.GRPCPort, log, db)
	if err != nil {
		log.Fatalw("ошибка запуска gRPC сервера", "error", err)
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("ошибка запуска HTTP-сервера", "error", err)
		}
	}()

	// Ждем сигнала остановки
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("получен сигнал остановки")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("ошибка при остановке HTTP-сервера", "error", err)
	}
	grpcSrv.GracefulStop()

	log.Info("сервис калькулятора остановлен")
}

// newLogger создает zap-логгер с уровнем из конфигурации
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	if os.Getenv("LOG_CONSOLE") == "1" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zapCfg.Build()
}

// openDatabase выбирает реализацию хранилища по конфигурации
func openDatabase(cfg *config.Config) (database.Database, error) {
	if cfg.DBType == "sqlite" {
		return database.New(cfg.DBPath)
	}
	return database.NewMemoryDB(), nil
}
