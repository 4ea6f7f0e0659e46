package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/GGmuzem/calc-api/internal/auth"
	"github.com/GGmuzem/calc-api/internal/database"
	"github.com/GGmuzem/calc-api/pkg/models"
)

// statusWriter перехватывает код ответа и проставляет заголовок
// X-Process-Time до отправки заголовков клиенту.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	start       time.Time
}

func (w *statusWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = status

	// Заголовки можно менять только до первой записи
	elapsed := time.Since(w.start).Seconds()
	w.Header().Set("X-Process-Time", strconv.FormatFloat(elapsed, 'f', 6, 64))

	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(data)
}

// loggingMiddleware логирует каждый запрос и ответ, проставляет
// X-Process-Time и обновляет метрики.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		s.log.Infow("запрос получен",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK, start: time.Now()}
		next.ServeHTTP(sw, r)

		duration := time.Since(sw.start)
		s.log.Infow("ответ отправлен",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", duration.Seconds(),
		)

		status := strconv.Itoa(sw.status)
		s.metrics.ResponseTime.WithLabelValues(r.Method, r.URL.Path, status).Observe(duration.Seconds())
		if sw.status >= http.StatusBadRequest {
			s.metrics.ErrorCount.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		}
	})
}

// extractToken достает JWT из заголовка Authorization или из cookie
func extractToken(r *http.Request) string {
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		// Проверяем cookie
		cookie, err := r.Cookie("jwt")
		if err != nil {
			return ""
		}
		return cookie.Value
	}
	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		// Убираем префикс "Bearer "
		tokenString = tokenString[7:]
	}
	return tokenString
}

// JWTMiddleware требует действительный токен и существующего пользователя
func (s *Server) JWTMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := extractToken(r)
		if tokenString == "" {
			s.writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "authorization required"})
			return
		}

		claims, err := s.auth.ValidateToken(tokenString)
		if err != nil {
			s.log.Warnw("недействительный токен", "error", err)
			s.writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid token"})
			return
		}

		// Пользователь мог быть удалён после выпуска токена
		if _, err := s.db.GetUserByID(claims.UserID); err != nil {
			s.log.Warnw("пользователь из токена не найден", "user_id", claims.UserID, "error", err)
			s.writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid token"})
			return
		}

		next(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
	}
}

// userIDFromRequest возвращает ID пользователя, если запрос содержит
// действительный токен. Анонимные запросы не отклоняются: токен на
// арифметических операциях не обязателен и нужен только для
// привязки записей журнала.
func (s *Server) userIDFromRequest(r *http.Request) int {
	tokenString := extractToken(r)
	if tokenString == "" {
		return 0
	}
	claims, err := s.auth.ValidateToken(tokenString)
	if err != nil {
		return 0
	}
	if _, err := s.db.GetUserByID(claims.UserID); err != nil {
		if !database.IsNotFound(err) {
			s.log.Warnw("не удалось проверить пользователя", "user_id", claims.UserID, "error", err)
		}
		return 0
	}
	return claims.UserID
}
