package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/GGmuzem/calc-api/internal/database"
	"github.com/GGmuzem/calc-api/pkg/models"
)

// RegisterHandler обрабатывает регистрацию пользователей
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: "login and password are required"})
		return
	}

	userID, err := s.db.CreateUser(&models.User{Login: req.Login, Password: req.Password})
	if err != nil {
		if errors.Is(err, database.ErrUserExists) {
			s.writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "user already exists"})
			return
		}
		s.log.Errorw("ошибка при регистрации пользователя", "login", req.Login, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
		return
	}

	s.log.Infow("пользователь зарегистрирован", "login", req.Login, "user_id", userID)
	s.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "user registered",
		"user_id": userID,
	})
}

// LoginHandler обрабатывает вход пользователей
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: "login and password are required"})
		return
	}

	user, err := s.db.GetUserByLogin(req.Login)
	if err != nil {
		s.log.Warnw("вход с неизвестным логином", "login", req.Login)
		s.writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid login or password"})
		return
	}

	// Проверяем пароль
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.log.Warnw("неверный пароль", "login", req.Login)
		s.writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid login or password"})
		return
	}

	token, expires, err := s.auth.GenerateToken(user)
	if err != nil {
		s.log.Errorw("ошибка при создании токена", "login", req.Login, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
		return
	}

	// Устанавливаем токен в cookie, чтобы веб-интерфейс работал без
	// заголовка Authorization
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Expires:  expires,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	s.log.Infow("пользователь вошел в систему", "login", user.Login, "user_id", user.ID)
	s.writeJSON(w, http.StatusOK, models.LoginResponse{
		Token:   token,
		UserID:  user.ID,
		Login:   user.Login,
		Expires: expires.Format(time.RFC3339),
	})
}
