// Package server реализует HTTP-слой сервиса: маршруты, валидацию
// запросов, преобразование доменных ошибок в коды ответа, журнал
// операций и веб-интерфейс.
package server

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GGmuzem/calc-api/internal/auth"
	"github.com/GGmuzem/calc-api/internal/config"
	"github.com/GGmuzem/calc-api/internal/database"
)

// Server HTTP-сервер калькулятора. Все зависимости передаются при
// создании, глобального состояния нет.
type Server struct {
	cfg      *config.Config
	log      *zap.SugaredLogger
	db       database.Database
	auth     *auth.Auth
	validate *validator.Validate
	metrics  *Metrics
	registry *prometheus.Registry
	web      *WebHandler
	httpSrv  *http.Server
}

// New создает сервер со всеми зависимостями
func New(cfg *config.Config, log *zap.SugaredLogger, db database.Database, authMgr *auth.Auth) *Server {
	registry := prometheus.NewRegistry()

	s := &Server{
		cfg:      cfg,
		log:      log.With("module", "server"),
		db:       db,
		auth:     authMgr,
		validate: validator.New(),
		metrics:  NewMetrics(registry),
		registry: registry,
		web:      NewWebHandler(cfg.StaticDir, cfg.TemplateDir, log),
	}

	s.httpSrv = &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: s.Router(),
	}

	return s
}

// Router настраивает маршруты сервиса
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.loggingMiddleware)

	// Арифметические операции
	router.HandleFunc("/add", s.AddHandler).Methods("POST")
	router.HandleFunc("/subtract", s.SubtractHandler).Methods("POST")
	router.HandleFunc("/multiply", s.MultiplyHandler).Methods("POST")
	router.HandleFunc("/divide", s.DivideHandler).Methods("POST")

	// Аутентификация и журнал операций
	router.HandleFunc("/api/register", s.RegisterHandler).Methods("POST")
	router.HandleFunc("/api/login", s.LoginHandler).Methods("POST")
	router.HandleFunc("/api/history", s.JWTMiddleware(s.HistoryHandler)).Methods("GET")

	// Метрики
	router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods("GET")

	// Веб-интерфейс
	router.HandleFunc("/", s.web.IndexHandler).Methods("GET")
	router.PathPrefix("/static/").Handler(s.web.ServeStaticFiles())

	return router
}

// Start запускает HTTP-сервер и блокируется до его остановки
func (s *Server) Start() error {
	s.log.Infow("HTTP-сервер запущен", "port", s.cfg.HTTPPort)
	return s.httpSrv.ListenAndServe()
}

// Shutdown корректно останавливает HTTP-сервер
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("остановка HTTP-сервера")
	return s.httpSrv.Shutdown(ctx)
}
