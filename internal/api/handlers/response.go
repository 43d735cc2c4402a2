package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-MarketplaceBooking/internal/domain"
)

const (
	maxBodyBytes = 1 << 20

	// RetryAfterSeconds подсказка клиенту для временных ошибок
	RetryAfterSeconds = 1

	msgInternalError = "внутренняя ошибка сервера"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// DecodeJSON декодирует тело запроса, отклоняя неизвестные поля
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// RespondJSON пишет ответ в JSON
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondTooManyRequests(w http.ResponseWriter, message string) {
	w.Header().Set("Retry-After", strconv.Itoa(RetryAfterSeconds))
	RespondError(w, http.StatusTooManyRequests, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// StatusFromError определяет HTTP статус по категории ошибки.
// ok == false, если ошибка не относится ни к одной категории.
func StatusFromError(err error) (status int, kind domain.ErrorKind, ok bool) {
	var (
		validationErr *domain.ValidationError
		conflictErr   *domain.ConflictError
		transientErr  *domain.TransientError
	)

	switch {
	case errors.As(err, &validationErr):
		if validationErr.Kind == domain.KindServiceNotFound {
			return http.StatusNotFound, validationErr.Kind, true
		}
		return http.StatusBadRequest, validationErr.Kind, true
	case errors.As(err, &conflictErr):
		return http.StatusConflict, conflictErr.Kind, true
	case errors.As(err, &transientErr):
		return http.StatusServiceUnavailable, transientErr.Kind, true
	}
	return 0, "", false
}

// RespondClassified отвечает по категории ошибки (validation/conflict/transient).
// Для временных ошибок выставляется Retry-After.
// Возвращает false, если ошибка не классифицирована и ответ не записан.
func RespondClassified(w http.ResponseWriter, err error, message string) bool {
	status, kind, ok := StatusFromError(err)
	if !ok {
		return false
	}
	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", strconv.Itoa(RetryAfterSeconds))
	}
	RespondJSON(w, status, ErrorResponse{Error: message, Code: string(kind)})
	return true
}
