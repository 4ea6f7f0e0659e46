package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GGmuzem/calc-api/internal/calculate"
	"github.com/GGmuzem/calc-api/pkg/models"
)

// operationFunc сигнатура операций арифметического ядра
type operationFunc func(a, b float64) (float64, error)

// AddHandler обрабатывает POST /add
func (s *Server) AddHandler(w http.ResponseWriter, r *http.Request) {
	s.handleOperation(w, r, "add", calculate.Add)
}

// SubtractHandler обрабатывает POST /subtract
func (s *Server) SubtractHandler(w http.ResponseWriter, r *http.Request) {
	s.handleOperation(w, r, "subtract", calculate.Subtract)
}

// MultiplyHandler обрабатывает POST /multiply
func (s *Server) MultiplyHandler(w http.ResponseWriter, r *http.Request) {
	s.handleOperation(w, r, "multiply", calculate.Multiply)
}

// DivideHandler обрабатывает POST /divide
func (s *Server) DivideHandler(w http.ResponseWriter, r *http.Request) {
	s.handleOperation(w, r, "divide", calculate.Divide)
}

// handleOperation общий путь всех четырех операций: валидация запроса,
// вызов ядра, преобразование результата или ошибки в HTTP-ответ.
func (s *Server) handleOperation(w http.ResponseWriter, r *http.Request, name string, fn operationFunc) {
	req, fieldErrors := s.decodeOperation(r)
	if fieldErrors != nil {
		message := strings.Join(fieldErrors, "; ")
		s.log.Warnw("ошибка валидации запроса",
			"operation", name,
			"path", r.URL.Path,
			"error", message,
		)
		s.writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: message})
		return
	}

	a, b := *req.A, *req.B
	s.log.Infow("операция вызвана", "operation", name, "a", a, "b", b)

	result, err := fn(a, b)

	// Бесконечность и NaN не представимы в JSON, считаем их
	// непредвиденной ошибкой вычисления
	if err == nil && (math.IsInf(result, 0) || math.IsNaN(result)) {
		err = fmt.Errorf("result of %s is not a finite number", name)
	}

	if err != nil {
		s.writeOperationError(w, r, name, a, b, err)
		return
	}

	s.log.Infow("операция выполнена",
		"operation", name, "a", a, "b", b, "result", result, "status", models.OperationStatusSuccess,
	)
	s.recordOperation(r, &models.OperationRecord{
		Operation: name,
		A:         a,
		B:         b,
		Result:    result,
		Status:    models.OperationStatusSuccess,
	})

	s.writeJSON(w, http.StatusOK, models.OperationResponse{Result: result})
}

// decodeOperation разбирает и валидирует тело запроса. Возвращает либо
// запрос, либо список ошибок полей в формате "поле: сообщение".
func (s *Server) decodeOperation(r *http.Request) (*models.OperationRequest, []string) {
	var req models.OperationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, []string{fmt.Sprintf("%s: must be a number", typeErr.Field)}
		}
		return nil, []string{"body: must be valid JSON"}
	}

	if err := s.validate.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			messages := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				messages = append(messages, fmt.Sprintf("%s: field is required", strings.ToLower(fe.Field())))
			}
			return nil, messages
		}
		return nil, []string{err.Error()}
	}

	return &req, nil
}

// writeOperationError преобразует ошибку операции в HTTP-ответ.
// Сохранена асимметрия оригинального поведения: divide скрывает
// непредвиденные ошибки за 500, остальные операции отдают текст
// ошибки с кодом 400.
func (s *Server) writeOperationError(w http.ResponseWriter, r *http.Request, name string, a, b float64, err error) {
	var calcErr *calculate.CalcError
	isDomain := errors.As(err, &calcErr)

	status := http.StatusBadRequest
	message := err.Error()
	if name == "divide" && !isDomain {
		status = http.StatusInternalServerError
		message = "Internal Server Error"
	}

	s.log.Errorw("операция завершилась ошибкой",
		"operation", name, "a", a, "b", b, "error", err.Error(), "status", status,
	)
	s.recordOperation(r, &models.OperationRecord{
		Operation: name,
		A:         a,
		B:         b,
		Status:    models.OperationStatusError,
		Error:     err.Error(),
	})

	s.writeJSON(w, status, models.ErrorResponse{Error: message})
}

// recordOperation пишет запись в журнал операций. Ошибка записи
// логируется и не прерывает обработку запроса.
func (s *Server) recordOperation(r *http.Request, rec *models.OperationRecord) {
	rec.UserID = s.userIDFromRequest(r)
	if err := s.db.SaveOperation(rec); err != nil {
		s.log.Warnw("не удалось записать операцию в журнал",
			"operation", rec.Operation, "error", err,
		)
	}
}

// writeJSON сериализует ответ и отправляет его с указанным кодом
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Errorw("не удалось сериализовать ответ", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, `{"error": "Internal Server Error"}`)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
