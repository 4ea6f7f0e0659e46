package server

import (
	"net/http"
	"strconv"

	"github.com/GGmuzem/calc-api/internal/auth"
	"github.com/GGmuzem/calc-api/pkg/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryHandler возвращает журнал операций пользователя.
// Доступен только с действительным токеном (см. JWTMiddleware).
func (s *Server) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	limit := queryInt(r, "limit", defaultHistoryLimit)
	if limit < 1 || limit > maxHistoryLimit {
		limit = defaultHistoryLimit
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	records, total, err := s.db.GetOperationsByUser(userID, limit, offset)
	if err != nil {
		s.log.Errorw("не удалось получить журнал операций", "user_id", userID, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"operations": records,
		"total":      total,
		"limit":      limit,
		"offset":     offset,
	})
}

// queryInt читает числовой параметр запроса
func queryInt(r *http.Request, name string, fallback int) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
